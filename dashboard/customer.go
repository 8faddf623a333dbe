package dashboard

import (
	"context"
	"log"
	"strings"

	"food-delivery-client/cart"
	"food-delivery-client/models"
)

const (
	TabRestaurants = "restaurants"
	TabOrders      = "orders"
	TabReports     = "reports"
)

type CustomerView struct {
	backend Backend
	notify  Notifier
	tab     string

	Restaurants *CustomerRestaurants
	Orders      *OrderHistory
}

func (v *CustomerView) Kind() Kind { return KindCustomer }
func (v *CustomerView) Tabs() []string { return []string{TabRestaurants, TabOrders} }
func (v *CustomerView) ActiveTab() string { return v.tab }

func (v *CustomerView) Open(ctx context.Context, tab string) {
	if tab == v.tab {
		return
	}
	switch tab {
	case TabRestaurants:
		v.Restaurants, v.Orders = NewCustomerRestaurants(v.backend, v.notify), nil
		v.Restaurants.Load(ctx)
	case TabOrders:
		v.Restaurants, v.Orders = nil, NewOrderHistory(v.backend, v.notify, "Error loading orders")
		v.Orders.Load(ctx)
	default:
		return
	}
	v.tab = tab
}

// CustomerRestaurants is the restaurant browser, menu and cart
type CustomerRestaurants struct {
	backend Backend
	notify  Notifier

	Restaurants  []models.Restaurant
	Loading      bool
	Selected     *models.Restaurant
	Menu         []models.Product
	MenuLoading  bool
	Cart         *cart.Cart
	Address      string
	PlacingOrder bool
}

func NewCustomerRestaurants(backend Backend, notify Notifier) *CustomerRestaurants {
	return &CustomerRestaurants{backend: backend, notify: notify, Cart: cart.New()}
}

// Load replaces the restaurant list with a fresh fetch
func (p *CustomerRestaurants) Load(ctx context.Context) {
	p.Loading = true
	defer func() { p.Loading = false }()

	list, err := p.backend.Restaurants(ctx)
	if err != nil {
		fetchFailed(p.notify, "Error loading restaurants", err)
		return
	}
	p.Restaurants = list
}

// Select makes the restaurant with key current and loads its menu. The
// previous menu is dropped before the fetch so it never shows under the
// new selection. The cart is kept.
func (p *CustomerRestaurants) Select(ctx context.Context, key string) bool {
	r, ok := findRestaurant(p.Restaurants, key)
	if !ok {
		return false
	}
	p.Selected = &r
	p.Menu = nil
	p.MenuLoading = true
	defer func() { p.MenuLoading = false }()

	menu, err := p.backend.Menu(ctx, r.ID)
	if err != nil {
		fetchFailed(p.notify, "Error loading menu", err)
		return true
	}
	p.Menu = menu
	return true
}

// AddToCart adds the menu product with key to the cart
func (p *CustomerRestaurants) AddToCart(key string) bool {
	for _, prod := range p.Menu {
		if prod.ID.String() == key {
			p.Cart.Add(prod)
			return true
		}
	}
	return false
}

func (p *CustomerRestaurants) UpdateQuantity(key string, qty int) {
	p.Cart.SetQuantity(key, qty)
}

// PlaceOrder validates the order locally, then submits it. The address is
// remembered first so a failed attempt can be retried as-is.
func (p *CustomerRestaurants) PlaceOrder(ctx context.Context, address string) error {
	p.Address = address

	switch {
	case p.Selected == nil:
		return invalid(p.notify, "Select a restaurant")
	case strings.TrimSpace(address) == "":
		return invalid(p.notify, "Enter a delivery address")
	case p.Cart.IsEmpty():
		return invalid(p.notify, "Your cart is empty")
	}

	p.PlacingOrder = true
	defer func() { p.PlacingOrder = false }()

	err := p.backend.CreateOrder(ctx, models.CreateOrderRequest{
		RestaurantID:    p.Selected.ID,
		DeliveryAddress: strings.TrimSpace(address),
		Items:           p.Cart.OrderLines(),
	})
	if err != nil {
		mutationFailed(p.notify, "Error placing order", err)
		return err
	}
	log.Printf("🛒 Order placed at %s", p.Selected.Name)
	p.notify.Alert("Order placed 🎉")
	p.Cart.Clear()
	p.Address = ""
	return nil
}

// OrderHistory is a fetch-on-mount list of the caller's own orders. It
// serves both the customer history tab and the driver dashboard.
type OrderHistory struct {
	backend  Backend
	notify   Notifier
	failDesc string

	Orders  []models.Order
	Loading bool
}

func NewOrderHistory(backend Backend, notify Notifier, failDesc string) *OrderHistory {
	return &OrderHistory{backend: backend, notify: notify, failDesc: failDesc}
}

func (p *OrderHistory) Load(ctx context.Context) {
	p.Loading = true
	defer func() { p.Loading = false }()

	orders, err := p.backend.MyOrders(ctx)
	if err != nil {
		fetchFailed(p.notify, p.failDesc, err)
		return
	}
	p.Orders = orders
}

func findRestaurant(list []models.Restaurant, key string) (models.Restaurant, bool) {
	for _, r := range list {
		if r.ID.String() == key {
			return r, true
		}
	}
	return models.Restaurant{}, false
}
