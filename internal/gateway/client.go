// Package gateway implements the REST client for the external payment
// provider. The provider performs the actual funds movement; this
// service only forwards adjusted amounts and records the outcome.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the payment provider over HTTP.
type Client struct {
	httpClient *http.Client
	paymentURL string
	balanceURL string
}

// Config holds the provider endpoints and the request timeout.
type Config struct {
	PaymentURL string
	BalanceURL string
	Timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		paymentURL: cfg.PaymentURL,
		balanceURL: cfg.BalanceURL,
	}
}

// SubmitPayment forwards a payment to the provider. A 4xx reply maps to
// *ClientError; an empty success body yields a zero-value response, the
// same way the provider contract treats "accepted, nothing to report".
func (c *Client) SubmitPayment(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.paymentURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment call failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment response: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, &ClientError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("payment provider error: status %d", resp.StatusCode)
	}

	var payment PaymentResponse
	if len(data) == 0 {
		return &payment, nil
	}
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}
	return &payment, nil
}

// FetchBalance reads the provider-side balance for a user. A reply with
// no body yields a zero-value balance.
func (c *Client) FetchBalance(ctx context.Context, userID uint) (*BalanceResponse, error) {
	url := fmt.Sprintf("%s/%d", c.balanceURL, userID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build balance request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("balance call failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance response: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, &ClientError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("payment provider error: status %d", resp.StatusCode)
	}

	var balance BalanceResponse
	if len(data) == 0 {
		return &balance, nil
	}
	if err := json.Unmarshal(data, &balance); err != nil {
		return nil, fmt.Errorf("failed to decode balance response: %w", err)
	}
	return &balance, nil
}
