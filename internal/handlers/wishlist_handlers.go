package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Wishlist Handlers ---
//

// AddToWishlistInput defines the JSON for adding a product to the wishlist.
type AddToWishlistInput struct {
	UserID    int64 `json:"userId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
}

// AddToWishlist is the handler for POST /api/wishlist/add
func (h *Handlers) AddToWishlist(c *gin.Context) {
	var input AddToWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId and productId are required"})
		return
	}

	result, err := h.DB.Exec(
		"INSERT INTO wishlist (userId, productId) VALUES (?, ?)",
		input.UserID, input.ProductID,
	)
	if err != nil {
		internalError(c, "Error adding wishlist item", err)
		return
	}
	wishlistID, _ := result.LastInsertId()

	c.JSON(http.StatusOK, gin.H{
		"message":    "Product added to wishlist",
		"wishlistId": wishlistID,
		"userId":     input.UserID,
		"productId":  input.ProductID,
	})
}

// GetWishlist is the handler for GET /api/wishlist/:userId.
// Each row carries the full product details via a join.
func (h *Handlers) GetWishlist(c *gin.Context) {
	userID := c.Param("userId")

	rows, err := h.DB.Query(
		`SELECT wishlist.id, products.productId, products.title, products.brand,
		        products.mrp, products.discountedPrice, products.description, products.image
		 FROM wishlist
		 JOIN products ON wishlist.productId = products.productId
		 WHERE wishlist.userId = ?`,
		userID,
	)
	if err != nil {
		internalError(c, "Error fetching wishlist", err)
		return
	}
	defer rows.Close()

	items := []models.WishlistProduct{}
	for rows.Next() {
		var item models.WishlistProduct
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.Title, &item.Brand,
			&item.MRP, &item.DiscountedPrice, &item.Description, &item.Image,
		); err != nil {
			internalError(c, "Error scanning wishlist item", err)
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating wishlist items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist fetched successfully",
		"total":   len(items),
		"data":    items,
	})
}

// RemoveWishlistItem is the handler for DELETE /api/wishlist/:id
func (h *Handlers) RemoveWishlistItem(c *gin.Context) {
	wishlistID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM wishlist WHERE id = ?", wishlistID)
	if err != nil {
		internalError(c, "Error deleting wishlist item", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Wishlist item removed successfully",
		"wishlistId": wishlistID,
	})
}
