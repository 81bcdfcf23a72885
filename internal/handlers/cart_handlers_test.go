package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("INSERT INTO cart").
		WithArgs(int64(7), int64(3), "M", 2, 999.0).
		WillReturnResult(sqlmock.NewResult(11, 1))

	w := app.doJSON(http.MethodPost, "/api/cart/add",
		`{"userId":7,"productId":3,"size":"M","quantity":2,"price":999}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		CartItemID int64 `json:"cartItemId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.CartItemID)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestAddToCartMissingFields(t *testing.T) {
	app := newTestApp(t)

	w := app.doJSON(http.MethodPost, "/api/cart/add", `{"userId":7}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestUpdateCartQuantityRejectsNonPositive(t *testing.T) {
	app := newTestApp(t)

	for _, quantity := range []int{0, -3} {
		w := app.doJSON(http.MethodPut, "/api/cart/update/5",
			fmt.Sprintf(`{"quantity":%d}`, quantity))

		assert.Equal(t, http.StatusBadRequest, w.Code, "quantity %d", quantity)
		assert.Contains(t, w.Body.String(), "greater than 0")
	}
	// The stored quantity must be untouched: no UPDATE was expected or run.
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestUpdateCartQuantity(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("UPDATE cart SET quantity").
		WithArgs(4, "5").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := app.doJSON(http.MethodPut, "/api/cart/update/5", `{"quantity":4}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestUpdateCartQuantityUnknownItem(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("UPDATE cart SET quantity").
		WithArgs(4, "999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := app.doJSON(http.MethodPut, "/api/cart/update/999", `{"quantity":4}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Cart item not found")
}

func TestGetCart(t *testing.T) {
	app := newTestApp(t)

	rows := sqlmock.NewRows([]string{"id", "userId", "productId", "size", "quantity", "price"}).
		AddRow(1, 7, 3, "M", 2, 999.0)

	app.mock.ExpectQuery("SELECT .+ FROM cart WHERE userId").
		WithArgs("7").
		WillReturnRows(rows)

	w := app.doJSON(http.MethodGet, "/api/cart/7", "")

	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0]["size"])
}

func TestRemoveCartItemNotFound(t *testing.T) {
	app := newTestApp(t)

	app.mock.ExpectExec("DELETE FROM cart").
		WithArgs("44").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := app.doJSON(http.MethodDelete, "/api/cart/44", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
