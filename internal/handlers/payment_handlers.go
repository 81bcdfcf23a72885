package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wearzy/wearzy-api/internal/models"
	"github.com/wearzy/wearzy-api/internal/payment"
)

//
// --- Payment Handlers ---
//

// CreatePaymentInput defines the JSON for minting a payment order.
type CreatePaymentInput struct {
	UserID int64   `json:"userId" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePayment is the handler for POST /api/payment/create.
// It asks the gateway for a provider-side order id, then records a local
// payment row keyed by that id.
func (h *Handlers) CreatePayment(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "UserId and Amount are required"})
		return
	}

	// 2. --- Mint the gateway order ---
	// The gateway wants minor units (paise), so rupees * 100.
	amountPaise := int64(input.Amount * 100)
	receipt := "order_rcpt_" + uuid.New().String()

	gatewayOrderID, err := h.Gateway.CreateOrder(c.Request.Context(), amountPaise, "INR", receipt)
	if err != nil {
		internalError(c, "Error creating payment order", err)
		return
	}

	// 3. --- Record the local payment row ---
	_, err = h.DB.Exec(
		"INSERT INTO payments (userId, orderId, amount, currency, status) VALUES (?, ?, ?, ?, ?)",
		input.UserID, gatewayOrderID, input.Amount, "INR", models.PaymentStatusPending,
	)
	if err != nil {
		internalError(c, "Error recording payment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment order created successfully",
		"orderId": gatewayOrderID,
		"amount":  input.Amount,
	})
}

// VerifyPaymentInput defines the JSON of the gateway callback.
type VerifyPaymentInput struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	UserID    int64  `json:"userId" binding:"required"`
}

// VerifyPayment is the handler for POST /api/payment/verify.
// The signature is recomputed locally; nothing is written unless it matches.
func (h *Handlers) VerifyPayment(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	// 2. --- Recompute & Compare the Signature ---
	if !payment.VerifySignature(h.Config.RazorpayKeySecret, input.OrderID, input.PaymentID, input.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment verification failed"})
		return
	}

	// 3. --- Mark the payment SUCCESS ---
	// Scoped by (orderId, userId) so one user cannot verify another's row.
	result, err := h.DB.Exec(
		"UPDATE payments SET paymentId = ?, signature = ?, status = ? WHERE orderId = ? AND userId = ?",
		input.PaymentID, input.Signature, models.PaymentStatusSuccess, input.OrderID, input.UserID,
	)
	if err != nil {
		internalError(c, "Error verifying payment", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Payment verified successfully",
		"paymentId": input.PaymentID,
	})
}
