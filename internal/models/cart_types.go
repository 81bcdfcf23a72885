package models

// CartItem defines the struct for the 'cart' table
type CartItem struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"userId" db:"userId"`
	ProductID int64   `json:"productId" db:"productId"`
	Size      string  `json:"size" db:"size"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"` // snapshot of the price when added
}
