package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"lokma/internal/models"
)

// Client handles requests to the ordering backend.
type Client struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL: baseURL,
	}
}

// Ping checks if the backend is reachable.
func (c *Client) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// FetchMenu retrieves the catalog. The backend must answer with a JSON
// array; anything else is a classified error and the caller shows a
// retry-capable empty state instead of crashing the browsing flow.
func (c *Client) FetchMenu(ctx context.Context) ([]models.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/webhook/menu", nil)
	if err != nil {
		return nil, networkErr(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, statusErr(resp.StatusCode, string(body))
	}

	var items []models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, badResponseErr("menu response is not an item list")
	}
	return items, nil
}

// CreateOrderRequest is the body sent to the order creation endpoint.
type CreateOrderRequest struct {
	Timestamp    string             `json:"timestamp"`
	OrderType    models.OrderType   `json:"orderType"`
	CustomerInfo CustomerInfo       `json:"customerInfo"`
	Items        []models.OrderItem `json:"items"`
	Total        float64            `json:"total"`
	Language     models.Language    `json:"language"`
}

// CustomerInfo carries the contact fields relevant to the order type.
type CustomerInfo struct {
	CustomerName string `json:"customerName,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	TableNumber  string `json:"tableNumber,omitempty"`
}

type createOrderResponse struct {
	Success bool `json:"success"`
	Payload struct {
		OrderID string `json:"order_ID"`
		Status  string `json:"status"`
	} `json:"payload"`
}

// CreateOrderResult is what a successful submission yields.
type CreateOrderResult struct {
	OrderID string
	Status  models.OrderStatus
}

// CreateOrder submits the order. The response must carry success=true and a
// non-empty order identifier; every other shape is a failure so no partial
// identifier ever leaks into the local order.
func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (*CreateOrderResult, error) {
	data, err := json.Marshal(order)
	if err != nil {
		return nil, badResponseErr("failed to encode order")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/webhook/new-order", bytes.NewBuffer(data))
	if err != nil {
		return nil, networkErr(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, statusErr(resp.StatusCode, string(body))
	}

	var parsed createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, badResponseErr("order response is not valid JSON")
	}
	if !parsed.Success || parsed.Payload.OrderID == "" {
		return nil, badResponseErr("backend did not confirm the order")
	}

	return &CreateOrderResult{
		OrderID: parsed.Payload.OrderID,
		Status:  models.ParseStatus(parsed.Payload.Status),
	}, nil
}

// StatusResponse is one status object from the status endpoint.
type StatusResponse struct {
	Status    string `json:"status"`
	OrderID   string `json:"order_ID,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// FetchStatus retrieves the current lifecycle status of an order. The
// endpoint may answer with a single status object or an array whose first
// element is the status object.
func (c *Client) FetchStatus(ctx context.Context, orderID string) (models.OrderStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/webhook/order-status?orderId="+orderID, nil)
	if err != nil {
		return models.StatusUnknown, networkErr(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.StatusUnknown, networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return models.StatusUnknown, statusErr(resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.StatusUnknown, networkErr(err)
	}

	var many []StatusResponse
	if err := json.Unmarshal(body, &many); err == nil {
		if len(many) == 0 {
			return models.StatusUnknown, badResponseErr("status response has no status object")
		}
		return models.ParseStatus(many[0].Status), nil
	}

	// An empty or unrecognized status field maps to unknown rather than an
	// error; the object itself arrived fine.
	var single StatusResponse
	if err := json.Unmarshal(body, &single); err == nil {
		return models.ParseStatus(single.Status), nil
	}

	return models.StatusUnknown, badResponseErr("status response has no status object")
}

// UpdateStatus asks the backend to move the order to a new status. The
// cancellation path sends "cancelled" through here; HTTP 200 or 201 counts
// as success.
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	data, err := json.Marshal(map[string]string{
		"orderId":   orderID,
		"newStatus": string(status),
	})
	if err != nil {
		return badResponseErr("failed to encode status update")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/webhook/order-update", bytes.NewBuffer(data))
	if err != nil {
		return networkErr(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return statusErr(resp.StatusCode, string(body))
	}
	return nil
}
