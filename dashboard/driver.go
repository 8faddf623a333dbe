package dashboard

import "context"

// DriverView lists the orders assigned to the signed-in driver. It has no
// mutating actions.
type DriverView struct {
	backend Backend
	notify  Notifier
	tab     string

	Orders *OrderHistory
}

func (v *DriverView) Kind() Kind { return KindDriver }
func (v *DriverView) Tabs() []string { return []string{TabOrders} }
func (v *DriverView) ActiveTab() string { return v.tab }

func (v *DriverView) Open(ctx context.Context, tab string) {
	if tab != TabOrders || tab == v.tab {
		return
	}
	v.Orders = NewOrderHistory(v.backend, v.notify, "Error loading assigned orders")
	v.Orders.Load(ctx)
	v.tab = tab
}
