package models

// Product defines the struct for the 'products' table
type Product struct {
	ProductID       int64   `json:"productId" db:"productId"`
	Title           string  `json:"title" db:"title"`
	Brand           string  `json:"brand" db:"brand"`
	MRP             float64 `json:"mrp" db:"mrp"`
	DiscountedPrice float64 `json:"discountedPrice" db:"discountedPrice"`
	Description     string  `json:"description" db:"description"`
	Image           string  `json:"image" db:"image"` // stored filename, served under /productImages
}
