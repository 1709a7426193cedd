// internal/domain/catalog/resolver.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrProductNotFound is returned when the backend reports 404 for a product
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidResponse is returned when the backend answers 2xx but the
	// payload is malformed or carries success=false
	ErrInvalidResponse = errors.New("invalid backend response")
)

// Client fetches the product catalog from the admin backend.
// It holds no mutable state, so concurrent calls are safe.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// productListResponse is the wire envelope of GET /api/products
type productListResponse struct {
	Success bool      `json:"success"`
	Data    []Product `json:"data"`
}

// productOptionsResponse is the wire envelope of GET /api/products/{id}/with-options
type productOptionsResponse struct {
	Success bool           `json:"success"`
	Data    ProductOptions `json:"data"`
}

// ListProducts fetches the full product list
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch products: unexpected status %d", resp.StatusCode)
	}

	var payload productListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: success flag not set", ErrInvalidResponse)
	}

	return payload.Data, nil
}

// Resolve fetches the variants and option groups for one product
func (c *Client) Resolve(ctx context.Context, productID string) (*ProductOptions, error) {
	endpoint := fmt.Sprintf("%s/api/products/%s/with-options", c.baseURL, url.PathEscape(productID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product options request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product options: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch product options: unexpected status %d", resp.StatusCode)
	}

	var payload productOptionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: success flag not set", ErrInvalidResponse)
	}

	return &payload.Data, nil
}
