// client.go - JSON client for the seller endpoints

// Package client is a small JSON client for the seller-facing endpoints,
// used by cmd/shopctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-shop-backend/models"
	"go-shop-backend/validation"
)

// APIError is a non-2xx response decoded from {error, fields}
type APIError struct {
	Status  int
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%d: %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%d: %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

// Client talks to one server
type Client struct {
	BaseURL string
	Token   string // sent as a bearer token when set
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// RegisterSeller creates a seller account
func (c *Client) RegisterSeller(ctx context.Context, in validation.AccountCreateInput) (models.AccountView, error) {
	var out struct {
		Seller models.AccountView `json:"seller"`
	}
	err := c.do(ctx, http.MethodPost, "/api/seller", in, &out)
	return out.Seller, err
}

// LoginSeller returns the seller and, when the server enforces auth, a token
func (c *Client) LoginSeller(ctx context.Context, email, password string) (models.AccountView, string, error) {
	var out struct {
		Seller models.AccountView `json:"seller"`
		Token  string             `json:"token"`
	}
	in := validation.AccountLoginInput{Email: email, Password: password}
	err := c.do(ctx, http.MethodPost, "/api/seller/login", in, &out)
	return out.Seller, out.Token, err
}

func (c *Client) SellerProducts(ctx context.Context, sellerID string) ([]models.ProductView, error) {
	var out struct {
		Items []models.ProductView `json:"items"`
	}
	err := c.do(ctx, http.MethodGet, "/api/seller/"+sellerID+"/products", nil, &out)
	return out.Items, err
}

func (c *Client) CreateProduct(ctx context.Context, in validation.ProductCreateInput) (models.ProductView, error) {
	var out struct {
		Product models.ProductView `json:"product"`
	}
	err := c.do(ctx, http.MethodPost, "/api/product", in, &out)
	return out.Product, err
}

// UpdateProduct sends only the given fields
func (c *Client) UpdateProduct(ctx context.Context, id string, fields map[string]any) (models.ProductView, error) {
	var out struct {
		Product models.ProductView `json:"product"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/product/"+id, fields, &out)
	return out.Product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/product/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
