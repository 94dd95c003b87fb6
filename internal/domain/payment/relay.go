// internal/domain/payment/relay.go
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oncloth/storefront/internal/config"
	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 1 << 20

var (
	ErrRelayStatus   = errors.New("payment relay returned an error status")
	ErrNoCheckoutURL = errors.New("no checkout URL received from payment relay")
)

// CheckoutItem carries only what the relay needs to price a line itself
type CheckoutItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CheckoutCustomer is the contact block sent to the relay
type CheckoutCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CheckoutRequest is the body posted to the payment relay
type CheckoutRequest struct {
	Items    []CheckoutItem   `json:"items"`
	Shipping float64          `json:"shipping"`
	Currency string           `json:"currency"`
	Customer CheckoutCustomer `json:"customer"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// Relay creates a hosted checkout and returns the URL to send the buyer to
type Relay interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error)
}

// RelayClient talks to the hosted-checkout relay over HTTP
type RelayClient struct {
	url        string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewRelayClient creates a relay client. A zero RelayTimeout leaves the
// request bounded only by ctx.
func NewRelayClient(cfg config.PaymentConfig, log logrus.FieldLogger) *RelayClient {
	return &RelayClient{
		url:        cfg.RelayURL,
		httpClient: &http.Client{Timeout: cfg.RelayTimeout},
		log:        log,
	}
}

// CreateCheckout posts req to the relay once. There is no retry.
func (r *RelayClient) CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	r.log.WithFields(logrus.Fields{
		"items":    len(req.Items),
		"shipping": req.Shipping,
	}).Debug("Sending order to payment relay")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call payment relay: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read relay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrRelayStatus, resp.StatusCode)
	}

	var out checkoutResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCheckoutURL, err)
	}
	if strings.TrimSpace(out.CheckoutURL) == "" {
		return "", ErrNoCheckoutURL
	}

	return out.CheckoutURL, nil
}

// FormatAddress joins the address parts into the single line the relay
// expects. An empty state is left out.
func FormatAddress(address, city, state, postalCode, country string) string {
	parts := []string{address, city}
	if state != "" {
		parts = append(parts, state)
	}
	parts = append(parts, postalCode, country)

	joined := strings.Join(parts, ", ")
	return strings.TrimSpace(strings.ReplaceAll(joined, ", ,", ","))
}
