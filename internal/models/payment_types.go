package models

// Payment statuses. A row starts PENDING when the gateway order is minted
// and only ever moves to SUCCESS after the signature check passes.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
)

// Payment defines the struct for the 'payments' table.
// OrderID is the gateway-assigned order id, not a local orders.id.
type Payment struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"userId" db:"userId"`
	OrderID   string  `json:"orderId" db:"orderId"`
	Amount    float64 `json:"amount" db:"amount"` // rupees; paise conversion happens at the gateway boundary
	Currency  string  `json:"currency" db:"currency"`
	Status    string  `json:"status" db:"status"`
	PaymentID string  `json:"paymentId" db:"paymentId"`
	Signature string  `json:"-" db:"signature"`
}
