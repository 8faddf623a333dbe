package dashboard

import (
	"context"

	"food-delivery-client/models"
)

// Backend is every remote call a dashboard panel can make. *api.Client
// implements it.
type Backend interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
	CreateRestaurant(ctx context.Context, name, address string) error
	Menu(ctx context.Context, restaurantID models.ID) ([]models.Product, error)
	AddProduct(ctx context.Context, restaurantID models.ID, name, description string, price float64) error
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) error
	MyOrders(ctx context.Context) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
	PendingOrders(ctx context.Context) ([]models.Order, error)
	AssignOrder(ctx context.Context, id models.ID) error
	MarkDelivered(ctx context.Context, id models.ID) error
	DownloadOrdersReport(ctx context.Context) ([]byte, error)
}
