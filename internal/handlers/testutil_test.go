package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wearzy/wearzy-api/internal/auth"
	"github.com/wearzy/wearzy-api/internal/config"
	"github.com/wearzy/wearzy-api/internal/handlers"
	"github.com/wearzy/wearzy-api/internal/routes"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testGatewaySecret = "test-razorpay-secret"
)

// fakeGateway satisfies payment.Gateway without any network traffic.
type fakeGateway struct {
	orderID string
	err     error

	gotAmountPaise int64
	gotCurrency    string
	gotReceipt     string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountPaise int64, currency, receipt string) (string, error) {
	f.gotAmountPaise = amountPaise
	f.gotCurrency = currency
	f.gotReceipt = receipt
	if f.err != nil {
		return "", f.err
	}
	return f.orderID, nil
}

// testApp bundles everything a handler test needs.
type testApp struct {
	handlers *handlers.Handlers
	mock     sqlmock.Sqlmock
	router   *gin.Engine
	gateway  *fakeGateway
	tokens   *auth.TokenManager
}

// newTestApp builds the full router backed by a sqlmock database and a
// fake payment gateway.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens := auth.NewTokenManager(testAccessSecret, testRefreshSecret, 15*time.Minute, 7*24*time.Hour)
	gateway := &fakeGateway{orderID: "order_test123"}

	cfg := &config.Config{
		Port:               "4006",
		DBDSN:              "sqlmock",
		AccessTokenSecret:  testAccessSecret,
		RefreshTokenSecret: testRefreshSecret,
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
		RazorpayKeyID:      "rzp_test_key",
		RazorpayKeySecret:  testGatewaySecret,
		UploadDir:          t.TempDir(),
		AppEnv:             "production",
	}

	h := &handlers.Handlers{
		DB:      db,
		Tokens:  tokens,
		Gateway: gateway,
		Config:  cfg,
	}

	return &testApp{
		handlers: h,
		mock:     mock,
		router:   routes.SetupRouter(h),
		gateway:  gateway,
		tokens:   tokens,
	}
}

// doJSON performs a request with a JSON body (or none) against the router.
func (a *testApp) doJSON(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// do performs a request built elsewhere (multipart, custom headers, ...).
func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}
