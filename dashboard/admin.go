package dashboard

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"food-delivery-client/models"
	"food-delivery-client/statemachine"

	"golang.org/x/sync/errgroup"
)

type AdminView struct {
	backend Backend
	notify  Notifier
	tab     string

	Orders      *AdminOrdersPanel
	Restaurants *AdminRestaurants
	Reports     *AdminReports
}

func (v *AdminView) Kind() Kind { return KindAdmin }
func (v *AdminView) Tabs() []string { return []string{TabOrders, TabRestaurants, TabReports} }
func (v *AdminView) ActiveTab() string { return v.tab }

func (v *AdminView) Open(ctx context.Context, tab string) {
	if tab == v.tab {
		return
	}
	switch tab {
	case TabOrders:
		v.Orders, v.Restaurants, v.Reports = NewAdminOrdersPanel(v.backend, v.notify), nil, nil
		v.Orders.Load(ctx)
	case TabRestaurants:
		v.Orders, v.Restaurants, v.Reports = nil, NewAdminRestaurants(v.backend, v.notify), nil
		v.Restaurants.Load(ctx)
	case TabReports:
		v.Orders, v.Restaurants, v.Reports = nil, nil, NewAdminReports(v.backend, v.notify)
	default:
		return
	}
	v.tab = tab
}

// AdminOrdersPanel shows pending and all orders side by side. Both lists are
// always refetched together; nothing is updated optimistically.
type AdminOrdersPanel struct {
	backend Backend
	notify  Notifier

	Pending []models.Order
	All     []models.Order
	Loading bool
}

func NewAdminOrdersPanel(backend Backend, notify Notifier) *AdminOrdersPanel {
	return &AdminOrdersPanel{backend: backend, notify: notify}
}

// Load fetches both lists concurrently and replaces them only if both succeed
func (p *AdminOrdersPanel) Load(ctx context.Context) {
	p.Loading = true
	defer func() { p.Loading = false }()

	var pending, all []models.Order
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pending, err = p.backend.PendingOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		all, err = p.backend.AllOrders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		fetchFailed(p.notify, "Error loading orders panel", err)
		return
	}
	p.Pending, p.All = pending, all
}

// Assign claims a pending order and reloads both lists
func (p *AdminOrdersPanel) Assign(ctx context.Context, key string) error {
	return p.transition(ctx, key, statemachine.ActionAssign, "Error assigning order", p.backend.AssignOrder)
}

// MarkDelivered completes an order and reloads both lists
func (p *AdminOrdersPanel) MarkDelivered(ctx context.Context, key string) error {
	return p.transition(ctx, key, statemachine.ActionDeliver, "Error marking order as delivered", p.backend.MarkDelivered)
}

func (p *AdminOrdersPanel) transition(ctx context.Context, key, action, failDesc string, call func(context.Context, models.ID) error) error {
	before, known := p.find(key)
	if err := call(ctx, models.ParseID(key)); err != nil {
		mutationFailed(p.notify, failDesc, err)
		return err
	}
	p.Load(ctx)

	if !known {
		return nil
	}
	want, ok := statemachine.ExpectedAfter(before.Status, action)
	if after, found := p.find(key); ok && found && after.Status != want {
		log.Printf("⚠️ Order %s is %s after %s, expected %s", key, statemachine.Label(after.Status), action, want)
	}
	return nil
}

func (p *AdminOrdersPanel) find(key string) (models.Order, bool) {
	for _, list := range [][]models.Order{p.All, p.Pending} {
		for _, o := range list {
			if o.ID.String() == key {
				return o, true
			}
		}
	}
	return models.Order{}, false
}

// RestaurantDraft is the create-restaurant form, kept across failed submits
type RestaurantDraft struct {
	Name    string
	Address string
}

// ProductDraft is the add-product form. Price stays as typed.
type ProductDraft struct {
	Name        string
	Description string
	Price       string
}

// AdminRestaurants manages restaurants and their menus
type AdminRestaurants struct {
	backend Backend
	notify  Notifier

	Restaurants []models.Restaurant
	Loading     bool
	Selected    *models.Restaurant
	Menu        []models.Product
	MenuLoading bool
	Submitting  bool
	Restaurant  RestaurantDraft
	Product     ProductDraft
}

func NewAdminRestaurants(backend Backend, notify Notifier) *AdminRestaurants {
	return &AdminRestaurants{backend: backend, notify: notify}
}

func (p *AdminRestaurants) Load(ctx context.Context) {
	p.Loading = true
	defer func() { p.Loading = false }()

	list, err := p.backend.Restaurants(ctx)
	if err != nil {
		fetchFailed(p.notify, "Error loading restaurants", err)
		return
	}
	p.Restaurants = list
}

// Select makes the restaurant with key current and loads its menu
func (p *AdminRestaurants) Select(ctx context.Context, key string) bool {
	r, ok := findRestaurant(p.Restaurants, key)
	if !ok {
		return false
	}
	p.loadMenu(ctx, r)
	return true
}

func (p *AdminRestaurants) loadMenu(ctx context.Context, r models.Restaurant) {
	p.Selected = &r
	p.Menu = nil
	p.MenuLoading = true
	defer func() { p.MenuLoading = false }()

	menu, err := p.backend.Menu(ctx, r.ID)
	if err != nil {
		fetchFailed(p.notify, "Error loading menu", err)
		return
	}
	p.Menu = menu
}

func (p *AdminRestaurants) CreateRestaurant(ctx context.Context, draft RestaurantDraft) error {
	p.Restaurant = draft
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Address) == "" {
		return invalid(p.notify, "Name and address are required")
	}

	p.Submitting = true
	defer func() { p.Submitting = false }()

	if err := p.backend.CreateRestaurant(ctx, draft.Name, draft.Address); err != nil {
		mutationFailed(p.notify, "Error creating restaurant", err)
		return err
	}
	p.Restaurant = RestaurantDraft{}
	p.Load(ctx)
	p.notify.Alert("Restaurant created")
	return nil
}

// AddProduct adds a product to the selected restaurant and reloads its menu
func (p *AdminRestaurants) AddProduct(ctx context.Context, draft ProductDraft) error {
	p.Product = draft
	if p.Selected == nil {
		return invalid(p.notify, "Select a restaurant first")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return invalid(p.notify, "Price must be a non-negative number")
	}

	p.Submitting = true
	defer func() { p.Submitting = false }()

	selected := *p.Selected
	if err := p.backend.AddProduct(ctx, selected.ID, draft.Name, draft.Description, price); err != nil {
		mutationFailed(p.notify, "Error adding product", err)
		return err
	}
	p.Product = ProductDraft{}
	p.loadMenu(ctx, selected)
	p.notify.Alert("Product added")
	return nil
}

// AdminReports triggers the CSV orders report download
type AdminReports struct {
	backend Backend
	notify  Notifier

	Downloading bool
}

func NewAdminReports(backend Backend, notify Notifier) *AdminReports {
	return &AdminReports{backend: backend, notify: notify}
}

// Download returns the report bytes, or false after alerting on failure
func (p *AdminReports) Download(ctx context.Context) ([]byte, bool) {
	p.Downloading = true
	defer func() { p.Downloading = false }()

	data, err := p.backend.DownloadOrdersReport(ctx)
	if err != nil {
		fetchFailed(p.notify, "Error downloading report", err)
		return nil, false
	}
	log.Printf("📄 Orders report downloaded (%d bytes)", len(data))
	return data, true
}
