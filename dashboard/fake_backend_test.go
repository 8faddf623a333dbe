package dashboard

import (
	"context"
	"errors"
	"sync"

	"food-delivery-client/api"
	"food-delivery-client/models"
)

// fakeBackend is an in-memory stand-in for the remote API. Orders move from
// pending to assigned to delivered the way the real backend moves them.
type fakeBackend struct {
	mu sync.Mutex

	restaurants []models.Restaurant
	menus       map[string][]models.Product
	orders      []models.Order
	report      []byte

	fail  map[string]error
	calls []string

	created []models.CreateOrderRequest

	// observe runs inside every call, after it is recorded
	observe func(call string)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		restaurants: []models.Restaurant{
			{ID: models.NumericID(1), Name: "Pizzeria", Address: "Main 1"},
			{ID: models.NumericID(2), Name: "Sushi Bar", Address: "Side 2"},
		},
		menus: map[string][]models.Product{
			"1": {
				{ID: models.NumericID(10), Name: "Margherita", Price: 12.5},
				{ID: models.NumericID(11), Name: "Soda", Price: 2},
			},
			"2": {{ID: models.NumericID(20), Name: "Maki", Price: 8}},
		},
		orders: []models.Order{
			{ID: models.NumericID(100), RestaurantName: "Pizzeria", Status: models.StatusPending},
			{ID: models.NumericID(101), RestaurantName: "Sushi Bar", Status: models.StatusAssigned, DriverName: "Dan"},
		},
		report: []byte("id,total\n"),
		fail:   map[string]error{},
	}
}

func (f *fakeBackend) record(call string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	err := f.fail[call]
	observe := f.observe
	f.mu.Unlock()
	if observe != nil {
		observe(call)
	}
	return err
}

func (f *fakeBackend) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeBackend) failWith(call, msg string) {
	f.fail[call] = &api.Error{Status: 400, Message: msg}
}

func (f *fakeBackend) Restaurants(context.Context) ([]models.Restaurant, error) {
	if err := f.record("Restaurants"); err != nil {
		return nil, err
	}
	return append([]models.Restaurant(nil), f.restaurants...), nil
}

func (f *fakeBackend) CreateRestaurant(_ context.Context, name, address string) error {
	if err := f.record("CreateRestaurant"); err != nil {
		return err
	}
	id := models.NumericID(int64(len(f.restaurants) + 1))
	f.restaurants = append(f.restaurants, models.Restaurant{ID: id, Name: name, Address: address})
	return nil
}

func (f *fakeBackend) Menu(_ context.Context, id models.ID) ([]models.Product, error) {
	if err := f.record("Menu"); err != nil {
		return nil, err
	}
	return append([]models.Product(nil), f.menus[id.String()]...), nil
}

func (f *fakeBackend) AddProduct(_ context.Context, id models.ID, name, description string, price float64) error {
	if err := f.record("AddProduct"); err != nil {
		return err
	}
	key := id.String()
	pid := models.NumericID(int64(1000 + len(f.menus[key])))
	f.menus[key] = append(f.menus[key], models.Product{ID: pid, Name: name, Description: description, Price: price})
	return nil
}

func (f *fakeBackend) CreateOrder(_ context.Context, req models.CreateOrderRequest) error {
	if err := f.record("CreateOrder"); err != nil {
		return err
	}
	f.created = append(f.created, req)
	return nil
}

func (f *fakeBackend) MyOrders(context.Context) ([]models.Order, error) {
	if err := f.record("MyOrders"); err != nil {
		return nil, err
	}
	return f.snapshot(func(models.Order) bool { return true }), nil
}

func (f *fakeBackend) AllOrders(context.Context) ([]models.Order, error) {
	if err := f.record("AllOrders"); err != nil {
		return nil, err
	}
	return f.snapshot(func(models.Order) bool { return true }), nil
}

func (f *fakeBackend) PendingOrders(context.Context) ([]models.Order, error) {
	if err := f.record("PendingOrders"); err != nil {
		return nil, err
	}
	return f.snapshot(func(o models.Order) bool { return o.Status == models.StatusPending }), nil
}

func (f *fakeBackend) AssignOrder(_ context.Context, id models.ID) error {
	if err := f.record("AssignOrder"); err != nil {
		return err
	}
	return f.setStatus(id, models.StatusAssigned)
}

func (f *fakeBackend) MarkDelivered(_ context.Context, id models.ID) error {
	if err := f.record("MarkDelivered"); err != nil {
		return err
	}
	return f.setStatus(id, models.StatusDelivered)
}

func (f *fakeBackend) DownloadOrdersReport(context.Context) ([]byte, error) {
	if err := f.record("DownloadOrdersReport"); err != nil {
		return nil, err
	}
	return f.report, nil
}

func (f *fakeBackend) snapshot(keep func(models.Order) bool) []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func (f *fakeBackend) setStatus(id models.ID, st models.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID.Equal(id) {
			f.orders[i].Status = st
			return nil
		}
	}
	return &api.Error{Status: 404, Message: "Order not found"}
}

var errDown = errors.New("backend down")
