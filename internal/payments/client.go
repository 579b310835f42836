// Package payments integrates the third-party checkout gateway: order
// creation ahead of the embedded checkout widget, and server-side signature
// verification of the completed payment.
package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultBaseURL is the gateway REST endpoint.
const defaultBaseURL = "https://api.checkout-gateway.com"

// requestTimeout bounds a single gateway call.
const requestTimeout = 15 * time.Second

// GatewayError represents a non-success response from the gateway.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error: status %d: %s", e.StatusCode, e.Body)
}

// Order is the gateway's order record consumed by the checkout widget.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// Client talks to the checkout gateway.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client from API credentials.
func NewClient(keyID, keySecret string) (*Client, error) {
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("payment gateway credentials are required")
	}
	return &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// WithBaseURL points the client at a different gateway host. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// CreateOrder registers a new order with the gateway and returns it. Amount
// is in the currency's smallest unit. The plan type rides along as a note so
// the verification webhook can attribute the purchase.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, planType string) (*Order, error) {
	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  "plan_" + planType,
		"notes":    map[string]string{"plan_type": planType},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to decode gateway order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway returned an order without an id")
	}
	return &order, nil
}

// VerifySignature checks the checkout result signature: HMAC-SHA256 of
// "orderID|paymentID" under the key secret, hex encoded. Comparison is
// constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
