package models

import "time"

// Order is the model for the 'orders' table
type Order struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"userId"`
	TotalAmount float64   `json:"totalAmount" db:"totalAmount"`
	Status      string    `json:"status" db:"status"` // e.g. PLACED, SHIPPED, DELIVERED
	CreatedAt   time.Time `json:"createdAt" db:"createdAt"`
}

// OrderItem is the model for the 'order_items' table
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"orderId" db:"orderId"`
	ProductID int64   `json:"productId" db:"productId"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"` // price at the time of purchase
}
