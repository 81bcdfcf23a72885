package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Order Handlers ---
//

// OrderItemInput is one line of a placed order.
type OrderItemInput struct {
	ProductID int64   `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required"`
}

// PlaceOrderInput defines the JSON for placing an order.
type PlaceOrderInput struct {
	UserID      int64            `json:"userId" binding:"required"`
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64          `json:"totalAmount" binding:"required"`
}

// PlaceOrder is the handler for POST /api/order/place.
// The order row and all of its item rows are written inside one
// transaction: either the whole order lands or none of it does.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId, items & totalAmount are required"})
		return
	}

	// 2. --- Begin Transaction ---
	tx, err := h.DB.Begin()
	if err != nil {
		internalError(c, "Error starting order transaction", err)
		return
	}
	defer tx.Rollback() // Safety net

	// 3. --- Insert the order ---
	orderResult, err := tx.Exec(
		"INSERT INTO orders (userId, totalAmount) VALUES (?, ?)",
		input.UserID, input.TotalAmount,
	)
	if err != nil {
		internalError(c, "Error inserting order", err)
		return
	}
	orderID, err := orderResult.LastInsertId()
	if err != nil {
		internalError(c, "Error reading new order id", err)
		return
	}

	// 4. --- Insert the order items ---
	for _, item := range input.Items {
		_, err := tx.Exec(
			"INSERT INTO order_items (orderId, productId, quantity, price) VALUES (?, ?, ?, ?)",
			orderID, item.ProductID, item.Quantity, item.Price,
		)
		if err != nil {
			internalError(c, "Error inserting order item", err)
			return
		}
	}

	// 5. --- Commit ---
	if err := tx.Commit(); err != nil {
		internalError(c, "Error committing order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

// GetMyOrders is the handler for GET /api/order/my-orders?userId=...
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId is required"})
		return
	}

	rows, err := h.DB.Query(
		"SELECT id, userId, totalAmount, status, createdAt FROM orders WHERE userId = ? ORDER BY createdAt DESC",
		userID,
	)
	if err != nil {
		internalError(c, "Error fetching orders", err)
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			internalError(c, "Error scanning order", err)
			return
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders fetched successfully",
		"orders":  orders,
	})
}

// GetOrderDetails is the handler for GET /api/order/:id
func (h *Handlers) GetOrderDetails(c *gin.Context) {
	orderID := c.Param("id")

	// 1. --- Fetch the order ---
	var o models.Order
	err := h.DB.QueryRow(
		"SELECT id, userId, totalAmount, status, createdAt FROM orders WHERE id = ?",
		orderID,
	).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		internalError(c, "Error fetching order", err)
		return
	}

	// 2. --- Fetch its items ---
	rows, err := h.DB.Query(
		"SELECT id, orderId, productId, quantity, price FROM order_items WHERE orderId = ?",
		orderID,
	)
	if err != nil {
		internalError(c, "Error fetching order items", err)
		return
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			internalError(c, "Error scanning order item", err)
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating order items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order details fetched successfully",
		"order":   o,
		"items":   items,
	})
}

// UpdateOrderStatusInput defines the JSON for an order status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PUT /api/order/status/:id
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	result, err := h.DB.Exec("UPDATE orders SET status = ? WHERE id = ?", input.Status, orderID)
	if err != nil {
		internalError(c, "Error updating order status", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"status":  input.Status,
	})
}
