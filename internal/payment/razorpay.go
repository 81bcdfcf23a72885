package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway mints provider-side payment orders. Handlers depend on this
// interface, not on Razorpay directly, so tests can substitute a fake.
type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (orderID string, err error)
}

// RazorpayClient talks to the Razorpay Orders API over HTTPS with
// key-id/key-secret basic auth.
type RazorpayClient struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// NewRazorpayClient builds a client with the injected API credentials.
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		baseURL:   "https://api.razorpay.com/v1",
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewRazorpayClientWithBaseURL is used by tests to point the client at a
// local httptest server.
func NewRazorpayClientWithBaseURL(keyID, keySecret, baseURL string) *RazorpayClient {
	client := NewRazorpayClient(keyID, keySecret)
	client.baseURL = baseURL
	return client
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder asks Razorpay to create a payment order and returns the
// gateway-assigned order id (e.g. "order_Kx2...").
func (r *RazorpayClient) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	// 1. Build the request body.
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	// 2. POST /v1/orders with basic auth.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.keyID, r.keySecret)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("razorpay order create failed: status %d: %s", resp.StatusCode, detail)
	}

	// 3. Decode the gateway order id.
	var out createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("razorpay order create returned no order id")
	}

	return out.ID, nil
}
