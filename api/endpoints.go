package api

import (
	"context"
	"net/http"
	"net/url"

	"food-delivery-client/models"
)

// ReportFilename is the name the orders CSV is saved under
const ReportFilename = "orders-report.csv"

// LoginResponse accepts every token field name the backend has been seen to use
type LoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	JWT         string `json:"jwt"`
}

// BearerToken returns the first non-empty token field
func (r LoginResponse) BearerToken() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.AccessToken != "":
		return r.AccessToken
	default:
		return r.JWT
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"email": email, "password": password}
	_, err := c.Do(ctx, http.MethodPost, "/api/Auth/login", body, &out)
	return out, err
}

func (c *Client) RegisterCustomer(ctx context.Context, fullName, email, password string) error {
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	_, err := c.Do(ctx, http.MethodPost, "/api/Auth/register/customer", body, nil)
	return err
}

func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	var wire []wireRestaurant
	if _, err := c.Do(ctx, http.MethodGet, "/api/Restaurants", nil, &wire); err != nil {
		return nil, err
	}
	return toRestaurants(wire), nil
}

func (c *Client) CreateRestaurant(ctx context.Context, name, address string) error {
	body := map[string]string{"name": name, "address": address}
	_, err := c.Do(ctx, http.MethodPost, "/api/Restaurants", body, nil)
	return err
}

func (c *Client) Menu(ctx context.Context, restaurantID models.ID) ([]models.Product, error) {
	var wire []wireProduct
	path := "/api/Restaurants/" + url.PathEscape(restaurantID.String()) + "/menu"
	if _, err := c.Do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	return toProducts(wire), nil
}

func (c *Client) AddProduct(ctx context.Context, restaurantID models.ID, name, description string, price float64) error {
	body := struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}{name, description, price}
	path := "/api/Restaurants/" + url.PathEscape(restaurantID.String()) + "/products"
	_, err := c.Do(ctx, http.MethodPost, path, body, nil)
	return err
}

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) error {
	_, err := c.Do(ctx, http.MethodPost, "/api/Orders", req, nil)
	return err
}

// MyOrders is scoped by the backend: customers get their orders, drivers
// the orders assigned to them.
func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	return c.orders(ctx, "/api/Orders/my")
}

func (c *Client) AllOrders(ctx context.Context) ([]models.Order, error) {
	return c.orders(ctx, "/api/OrdersPanel/all")
}

func (c *Client) PendingOrders(ctx context.Context) ([]models.Order, error) {
	return c.orders(ctx, "/api/OrdersPanel/pending")
}

func (c *Client) AssignOrder(ctx context.Context, id models.ID) error {
	path := "/api/OrdersPanel/" + url.PathEscape(id.String()) + "/assign"
	_, err := c.Do(ctx, http.MethodPut, path, struct{}{}, nil)
	return err
}

func (c *Client) MarkDelivered(ctx context.Context, id models.ID) error {
	path := "/api/OrdersPanel/" + url.PathEscape(id.String()) + "/delivered"
	_, err := c.Do(ctx, http.MethodPut, path, struct{}{}, nil)
	return err
}

func (c *Client) orders(ctx context.Context, path string) ([]models.Order, error) {
	var wire []wireOrder
	if _, err := c.Do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	return toOrders(wire), nil
}

// DownloadOrdersReport fetches the CSV report as raw bytes. Only the
// Authorization header is sent and the body is never interpreted.
func (c *Client) DownloadOrdersReport(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/Reports/orders/csv", nil)
	if err != nil {
		return nil, err
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}
	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Message: "Could not download the report"}
	}
	return resp.Body, nil
}
