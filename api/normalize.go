package api

import (
	"bytes"
	"encoding/json"
	"strconv"

	"food-delivery-client/models"
	"food-delivery-client/statemachine"
)

// The wire types below absorb the shape differences seen across backend
// versions. encoding/json matches keys case-insensitively, so PascalCase
// payloads decode as well.

// number accepts JSON numbers, numeric strings and null
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

type wireRestaurant struct {
	ID      models.ID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

type wireProduct struct {
	ID          models.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       number    `json:"price"`
}

type wireOrderItem struct {
	ProductID   models.ID `json:"productId"`
	ProductName string    `json:"productName"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Price       number    `json:"price"`
	UnitPrice   number    `json:"unitPrice"`
}

type wireOrder struct {
	ID              models.ID       `json:"id"`
	RestaurantID    models.ID       `json:"restaurantId"`
	RestaurantName  string          `json:"restaurantName"`
	Restaurant      *wireRestaurant `json:"restaurant"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Items           []wireOrderItem `json:"items"`
	Status          any             `json:"status"`
	OrderStatus     any             `json:"orderStatus"`
	Total           number          `json:"total"`
	TotalAmount     number          `json:"totalAmount"`
	CustomerName    string          `json:"customerName"`
	DriverName      string          `json:"driverName"`
}

func toRestaurants(wire []wireRestaurant) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(wire))
	for _, w := range wire {
		out = append(out, models.Restaurant{ID: w.ID, Name: w.Name, Address: w.Address})
	}
	return out
}

func toProducts(wire []wireProduct) []models.Product {
	out := make([]models.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, models.Product{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
			Price:       float64(w.Price),
		})
	}
	return out
}

func toOrders(wire []wireOrder) []models.Order {
	out := make([]models.Order, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toModel())
	}
	return out
}

func (w wireOrder) toModel() models.Order {
	o := models.Order{
		ID:              w.ID,
		RestaurantID:    w.RestaurantID,
		RestaurantName:  w.RestaurantName,
		DeliveryAddress: w.DeliveryAddress,
		Status:          statemachine.Normalize(w.Status),
		Total:           float64(w.Total),
		CustomerName:    w.CustomerName,
		DriverName:      w.DriverName,
	}
	if w.Restaurant != nil {
		if o.RestaurantName == "" {
			o.RestaurantName = w.Restaurant.Name
		}
		if o.RestaurantID.IsZero() {
			o.RestaurantID = w.Restaurant.ID
		}
	}
	if o.Status == "" {
		o.Status = statemachine.Normalize(w.OrderStatus)
	}
	if o.Total == 0 {
		o.Total = float64(w.TotalAmount)
	}
	for _, it := range w.Items {
		item := models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			Price:     float64(it.Price),
		}
		if item.Name == "" {
			item.Name = it.Name
		}
		if item.Price == 0 {
			item.Price = float64(it.UnitPrice)
		}
		o.Items = append(o.Items, item)
	}
	return o
}
