// Package razorpay is a minimal Razorpay Orders API client.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/pkg/apperror"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Client implements ports.RazorpayGateway.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

// NewClient creates a client authenticating with keyID/keySecret.
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		keyID:     keyID,
		keySecret: keySecret,
		http:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) KeyID() string     { return c.keyID }
func (c *Client) KeySecret() string { return c.keySecret }

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates an order for amountPaise. A 400 from Razorpay is the
// caller's fault (VAL_001); any other failure is PAY_003.
func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*domain.RazorpayOrder, error) {
	body, err := json.Marshal(createOrderRequest{Amount: amountPaise, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("razorpay create order: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("read razorpay response: %w", err))
	}
	parsed := gjson.ParseBytes(raw)

	if resp.StatusCode != http.StatusOK {
		desc := parsed.Get("error.description").String()
		if desc == "" {
			desc = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusBadRequest {
			return nil, apperror.Validation(desc)
		}
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("razorpay create order: status %d: %s", resp.StatusCode, desc))
	}

	id := parsed.Get("id").String()
	if id == "" {
		return nil, apperror.ErrProviderUnavailable(fmt.Errorf("razorpay create order: response has no id"))
	}

	order := &domain.RazorpayOrder{
		ID:          id,
		AmountPaise: parsed.Get("amount").Int(),
		Currency:    parsed.Get("currency").String(),
		Receipt:     parsed.Get("receipt").String(),
		CreatedAt:   time.Now().UTC(),
	}
	if ts := parsed.Get("created_at").Int(); ts > 0 {
		order.CreatedAt = time.Unix(ts, 0).UTC()
	}
	return order, nil
}
