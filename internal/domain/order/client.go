// internal/domain/order/client.go
package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// APIError is a non-2xx answer from the order API, carrying the
// backend's message when one was provided
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("order API request failed with status %d", e.StatusCode)
}

// Client wraps the backend's order REST resource. Every call is a single
// attempt; there is no retry or backoff layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new order client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// dataEnvelope is the `{data: ...}` wrapper on order mutation responses
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Create submits a new order
func (c *Client) Create(ctx context.Context, submission *Submission) (*Order, error) {
	var created Order
	if err := c.doData(ctx, http.MethodPost, "/api/orders", submission, &created); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &created, nil
}

// List fetches orders matching the filter
func (c *Client) List(ctx context.Context, filter *ListFilter) (*ListResult, error) {
	query := url.Values{}
	if filter != nil {
		if filter.Status != "" {
			query.Set("status", string(filter.Status))
		}
		if filter.Page > 0 {
			query.Set("page", strconv.Itoa(filter.Page))
		}
		if filter.Limit > 0 {
			query.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Search != "" {
			query.Set("search", filter.Search)
		}
	}

	path := "/api/orders"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	// The list endpoint answers without the data envelope
	var result ListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return &result, nil
}

// Get fetches one order by id
func (c *Client) Get(ctx context.Context, orderID string) (*Order, error) {
	var fetched Order
	path := "/api/orders/" + url.PathEscape(orderID)
	if err := c.doData(ctx, http.MethodGet, path, nil, &fetched); err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &fetched, nil
}

// UpdateStatus transitions an order to the given status
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	var updated Order
	path := "/api/orders/" + url.PathEscape(orderID) + "/status"
	body := map[string]Status{"status": status}
	if err := c.doData(ctx, http.MethodPatch, path, body, &updated); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &updated, nil
}

// AddPayment records a payment against an order
func (c *Client) AddPayment(ctx context.Context, orderID string, payment *PaymentRequest) (*Order, error) {
	var updated Order
	path := "/api/orders/" + url.PathEscape(orderID) + "/payments"
	if err := c.doData(ctx, http.MethodPost, path, payment, &updated); err != nil {
		return nil, fmt.Errorf("failed to add payment: %w", err)
	}
	return &updated, nil
}

// GetStats fetches aggregate order statistics
func (c *Client) GetStats(ctx context.Context, filter *StatsFilter) (*Stats, error) {
	query := url.Values{}
	if filter != nil {
		if filter.StartDate != "" {
			query.Set("startDate", filter.StartDate)
		}
		if filter.EndDate != "" {
			query.Set("endDate", filter.EndDate)
		}
	}

	path := "/api/orders/stats"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var stats Stats
	if err := c.doData(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch order stats: %w", err)
	}
	return &stats, nil
}

// doData performs a request whose success payload is `{data: ...}`
func (c *Client) doData(ctx context.Context, method, path string, body, out interface{}) error {
	var envelope dataEnvelope
	if err := c.do(ctx, method, path, body, &envelope); err != nil {
		return err
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// do performs one request and decodes the response into out.
// Non-2xx answers become an *APIError with the backend message if present.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
