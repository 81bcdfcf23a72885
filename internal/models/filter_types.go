package models

// Filters is the singleton row from the 'filters' table.
// The four list columns are stored as JSON text in MySQL and decoded
// by the handler before being returned to the client.
type Filters struct {
	ID        int64    `json:"id" db:"id"`
	Brands    []string `json:"brands"`
	Colors    []string `json:"colors"`
	Sizes     []string `json:"sizes"`
	Discounts []string `json:"discounts"`
}
