package models

// OrderStatus is the display status of an order. The backend owns every
// transition; the client only renders it.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAssigned  OrderStatus = "Assigned"
	StatusDelivered OrderStatus = "Delivered"
)

type Order struct {
	ID              ID
	RestaurantID    ID
	RestaurantName  string
	DeliveryAddress string
	Items           []OrderItem
	Status          OrderStatus
	Total           float64
	CustomerName    string
	DriverName      string
}

type OrderItem struct {
	ProductID ID
	Name      string
	Quantity  int
	Price     float64
}

// OrderLineRequest is one {productId, quantity} pair of a create-order call
type OrderLineRequest struct {
	ProductID ID  `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/Orders
type CreateOrderRequest struct {
	RestaurantID    ID                 `json:"restaurantId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []OrderLineRequest `json:"items"`
}
