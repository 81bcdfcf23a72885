package models

// WishlistItem defines the struct for the 'wishlist' table
type WishlistItem struct {
	ID        int64 `json:"id" db:"id"`
	UserID    int64 `json:"userId" db:"userId"`
	ProductID int64 `json:"productId" db:"productId"`
}

// WishlistProduct is a wishlist row joined with its product details,
// as returned by the wishlist listing endpoint.
type WishlistProduct struct {
	ID int64 `json:"id"` // wishlist row id
	Product
}
