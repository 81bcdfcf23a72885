package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Cart Handlers ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	UserID    int64   `json:"userId" binding:"required"`
	ProductID int64   `json:"productId" binding:"required"`
	Size      string  `json:"size" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required"`
}

// AddToCart is the handler for POST /api/cart/add
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.DB.Exec(
		`INSERT INTO cart (userId, productId, size, quantity, price)
		 VALUES (?, ?, ?, ?, ?)`,
		input.UserID, input.ProductID, input.Size, input.Quantity, input.Price,
	)
	if err != nil {
		internalError(c, "Error adding to cart", err)
		return
	}
	cartItemID, _ := result.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Item added to cart",
		"cartItemId": cartItemID,
	})
}

// GetCart is the handler for GET /api/cart/:userId
func (h *Handlers) GetCart(c *gin.Context) {
	userID := c.Param("userId")

	rows, err := h.DB.Query(
		"SELECT id, userId, productId, size, quantity, price FROM cart WHERE userId = ?",
		userID,
	)
	if err != nil {
		internalError(c, "Error fetching cart", err)
		return
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Size, &item.Quantity, &item.Price); err != nil {
			internalError(c, "Error scanning cart item", err)
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating cart items", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateCartQuantityInput defines the JSON for updating an item's quantity.
type UpdateCartQuantityInput struct {
	Quantity int `json:"quantity"`
}

// UpdateCartQuantity is the handler for PUT /api/cart/update/:id
func (h *Handlers) UpdateCartQuantity(c *gin.Context) {
	cartID := c.Param("id")

	// 1. --- Bind & Validate ---
	// Quantity must be present and strictly positive; removal goes
	// through the DELETE route, not quantity zero.
	var input UpdateCartQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity is required and must be greater than 0"})
		return
	}

	// 2. --- Execute Update ---
	result, err := h.DB.Exec("UPDATE cart SET quantity = ? WHERE id = ?", input.Quantity, cartID)
	if err != nil {
		internalError(c, "Error updating cart quantity", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, gin.H{
		"message":  "Cart quantity updated successfully",
		"cartId":   cartID,
		"quantity": input.Quantity,
	})
}

// RemoveCartItem is the handler for DELETE /api/cart/:id
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	cartID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM cart WHERE id = ?", cartID)
	if err != nil {
		internalError(c, "Error deleting cart item", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item removed successfully",
		"cartId":  cartID,
	})
}
