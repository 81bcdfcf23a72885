package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearzy/wearzy-api/internal/models"
)

func TestRegisterUser(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("INSERT INTO users").
		WithArgs("Asha", "asha@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := app.doJSON(http.MethodPost, "/api/user/register",
		`{"name":"Asha","email":"asha@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("INSERT INTO users").
		WithArgs("Asha", "asha@example.com", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	w := app.doJSON(http.MethodPost, "/api/user/register",
		`{"name":"Asha","email":"asha@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	// The driver's error text must never leak to the client.
	assert.NotContains(t, w.Body.String(), "Duplicate entry")
}

func TestRegisterUserMissingFields(t *testing.T) {
	app := newTestApp(t)

	w := app.doJSON(http.MethodPost, "/api/user/register", `{"email":"asha@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

// hashFor produces a stored bcrypt hash the way registration would.
func hashFor(t *testing.T, plaintext string) string {
	t.Helper()
	var p models.Password
	require.NoError(t, p.Set(plaintext))
	return p.Hash
}

func TestLoginIssuesTokenPair(t *testing.T) {
	app := newTestApp(t)

	userRows := sqlmock.NewRows([]string{"userId", "name", "email", "password"}).
		AddRow(7, "Asha", "asha@example.com", hashFor(t, "secret123"))

	app.mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("asha@example.com").
		WillReturnRows(userRows)
	app.mock.ExpectExec("INSERT INTO refresh_tokens").
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := app.doJSON(http.MethodPost, "/api/user/login",
		`{"email":"asha@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)
	assert.NotEmpty(t, body.RefreshToken)
	assert.NotEqual(t, body.AccessToken, body.RefreshToken)

	// Both tokens carry the same identity.
	claims, err := app.tokens.ValidateAccessToken(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)

	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)

	// Unknown email: no user row.
	app.mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"userId", "name", "email", "password"}))

	unknown := app.doJSON(http.MethodPost, "/api/user/login",
		`{"email":"nobody@example.com","password":"secret123"}`)

	// Known email, wrong password.
	userRows := sqlmock.NewRows([]string{"userId", "name", "email", "password"}).
		AddRow(7, "Asha", "asha@example.com", hashFor(t, "secret123"))
	app.mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("asha@example.com").
		WillReturnRows(userRows)

	wrongPassword := app.doJSON(http.MethodPost, "/api/user/login",
		`{"email":"asha@example.com","password":"WRONG"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Byte-identical bodies: nothing distinguishes the two causes.
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestGetAllUsersOmitsPasswords(t *testing.T) {
	app := newTestApp(t)

	rows := sqlmock.NewRows([]string{"userId", "name", "email"}).
		AddRow(7, "Asha", "asha@example.com")
	app.mock.ExpectQuery("SELECT .+ FROM users").WillReturnRows(rows)

	w := app.doJSON(http.MethodGet, "/api/user", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetProfileEchoesClaims(t *testing.T) {
	app := newTestApp(t)

	token, err := app.tokens.GenerateAccessToken(7, "asha@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := app.do(req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Profile struct {
			UserID int64  `json:"userId"`
			Email  string `json:"email"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.Profile.UserID)
	assert.Equal(t, "asha@example.com", body.Profile.Email)
	// Stateless: no database round trip happened.
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestGetProfileRejectsBadToken(t *testing.T) {
	app := newTestApp(t)

	missing := app.doJSON(http.MethodGet, "/api/user/profile", "")
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	invalid := app.do(req)
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("UPDATE users SET name").
		WithArgs("Asha Rao", "asha@example.com", "7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := app.doJSON(http.MethodPut, "/api/user/profile/update/7",
		`{"name":"Asha Rao","email":"asha@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("UPDATE users SET name").
		WithArgs("Asha Rao", "asha@example.com", "999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := app.doJSON(http.MethodPut, "/api/user/profile/update/999",
		`{"name":"Asha Rao","email":"asha@example.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
