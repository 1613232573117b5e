package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"garment-orders/internal/models"
)

// Client talks to the hosted record store's collection API. It is the only
// component that knows the wire format; callers get models.Order values back.
type Client struct {
	baseURL    string
	collection string
	client     *http.Client
}

func NewClient(baseURL, collection string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, collection: collection, client: httpClient}
}

type listResponse struct {
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	TotalItems int            `json:"totalItems"`
	Items      []models.Order `json:"items"`
}

func (c *Client) recordsURL() string {
	return fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, c.collection)
}

// ListOrders fetches the collection newest-first. An optional filter
// expression (see filter.go) pushes search/category predicates to the store;
// an empty filter fetches everything for local evaluation.
func (c *Client) ListOrders(ctx context.Context, filter string) ([]models.Order, error) {
	u, err := url.Parse(c.recordsURL())
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}
	q := u.Query()
	q.Set("sort", "-created")
	q.Set("perPage", "500")
	if filter != "" {
		q.Set("filter", filter)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store list error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store list failed: status %d", resp.StatusCode)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return list.Items, nil
}

// GetOrder fetches a single record by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s", c.recordsURL(), url.PathEscape(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store get error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("order %s not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store get failed: status %d", resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &order, nil
}

// CreateOrder posts a new record wrapping the validated, server-priced
// request payload. The store assigns id and timestamps.
func (c *Client) CreateOrder(ctx context.Context, request models.OrderRequest) (*models.Order, error) {
	body, err := json.Marshal(map[string]any{"request": request})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.recordsURL(), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store create error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("store create failed: status %d", resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode created record: %w", err)
	}
	return &order, nil
}

// PatchOrder sends a partial field update (paid/taken/notes transitions) and
// returns the updated record.
func (c *Client) PatchOrder(ctx context.Context, id string, fields map[string]any) (*models.Order, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/%s", c.recordsURL(), url.PathEscape(id)), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store patch error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store patch failed: status %d", resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode patched record: %w", err)
	}
	return &order, nil
}
