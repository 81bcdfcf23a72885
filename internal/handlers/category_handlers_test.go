package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategoryGeneratesSlug(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("INSERT INTO categories").
		WithArgs("Winter Wear", "winter-wear").
		WillReturnResult(sqlmock.NewResult(3, 1))

	w := app.doJSON(http.MethodPost, "/api/categories/add", `{"name":"Winter Wear"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID   int64  `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.ID)
	assert.Equal(t, "winter-wear", body.Slug)
}

func TestAddCategoryKeepsExplicitSlug(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("INSERT INTO categories").
		WithArgs("Winter Wear", "winterwear").
		WillReturnResult(sqlmock.NewResult(4, 1))

	w := app.doJSON(http.MethodPost, "/api/categories/add",
		`{"name":"Winter Wear","slug":"winterwear"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestAddCategoryRequiresName(t *testing.T) {
	app := newTestApp(t)

	w := app.doJSON(http.MethodPost, "/api/categories/add", `{"slug":"x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestGetAllCategories(t *testing.T) {
	app := newTestApp(t)

	rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
		AddRow(1, "Men", "men").
		AddRow(2, "Women", "women")
	app.mock.ExpectQuery("SELECT .+ FROM categories").WillReturnRows(rows)

	w := app.doJSON(http.MethodGet, "/api/categories", "")

	require.Equal(t, http.StatusOK, w.Code)

	var categories []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 2)
}

func TestGetFiltersDecodesListColumns(t *testing.T) {
	app := newTestApp(t)

	rows := sqlmock.NewRows([]string{"id", "brands", "colors", "sizes", "discounts"}).
		AddRow(1,
			`["Levis","Wrangler"]`,
			`["Black","Blue"]`,
			`["S","M","L"]`,
			`["10%","25%"]`)
	app.mock.ExpectQuery("SELECT .+ FROM filters").WillReturnRows(rows)

	w := app.doJSON(http.MethodGet, "/api/filters", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Brands    []string `json:"brands"`
		Colors    []string `json:"colors"`
		Sizes     []string `json:"sizes"`
		Discounts []string `json:"discounts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Levis", "Wrangler"}, body.Brands)
	assert.Equal(t, []string{"S", "M", "L"}, body.Sizes)
}

func TestGetFiltersMissingSingleton(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectQuery("SELECT .+ FROM filters").
		WillReturnRows(sqlmock.NewRows([]string{"id", "brands", "colors", "sizes", "discounts"}))

	w := app.doJSON(http.MethodGet, "/api/filters", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No filters found")
}
