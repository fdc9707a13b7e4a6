// Package catalog implements the remote catalog API client.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/Veraticus/catalog-tui/internal/service"
)

var _ service.Catalog = (*Client)(nil)

const defaultTimeout = 30 * time.Second

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error (%s %s, status %d): %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap lets callers match any API error with common.ErrRemote.
func (e *APIError) Unwrap() error {
	return common.ErrRemote
}

// Client talks to the catalog REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client requests are sent with. The client is
// copied and the copy gets the client timeout, 30s unless WithTimeout says
// otherwise, so the caller's value is never changed.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the transport timeout for every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: catalog base URL %q", common.ErrInvalidConfig, baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	httpClient := *c.httpClient
	if c.timeout > 0 {
		httpClient.Timeout = c.timeout
	}
	c.httpClient = &httpClient

	return c, nil
}

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var resp listCategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(resp.Categories))
	for _, dto := range resp.Categories {
		categories = append(categories, dto.toModel())
	}
	return categories, nil
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, page, size int) (model.ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp listProductsResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", query, nil, &resp); err != nil {
		return model.ProductPage{}, err
	}

	products := make([]model.Product, 0, len(resp.Products))
	for _, dto := range resp.Products {
		products = append(products, dto.toModel())
	}

	return model.ProductPage{
		Products:   products,
		TotalPages: resp.TotalPages,
	}.Normalize(), nil
}

// CreateCategory creates a category named name.
func (c *Client) CreateCategory(ctx context.Context, name string) (string, error) {
	return c.message(ctx, http.MethodPost, "/api/categories", createCategoryRequest{CategoryName: name})
}

// CreateProduct creates a product in the given category.
func (c *Client) CreateProduct(ctx context.Context, name, categoryID string) (string, error) {
	return c.message(ctx, http.MethodPost, "/api/products", productRequest{
		ProductName: name,
		CategoryID:  categoryID,
	})
}

// UpdateProduct renames and/or reassigns the product with id.
func (c *Client) UpdateProduct(ctx context.Context, id, name, categoryID string) (string, error) {
	return c.message(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), productRequest{
		ProductName: name,
		CategoryID:  categoryID,
	})
}

// DeleteProduct removes the product with id.
func (c *Client) DeleteProduct(ctx context.Context, id string) (string, error) {
	return c.message(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil)
}

func (c *Client) message(ctx context.Context, method, path string, body any) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, method, path, nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// do performs one request and decodes a JSON response into out.
// An empty success body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("Catalog request", "method", method, "path", path, "query", query.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", common.ErrRemote, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", common.ErrRemote, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %w: %w", common.ErrRemote, common.ErrMalformedResult, err)
	}
	return nil
}
