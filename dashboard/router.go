// Package dashboard holds the per-role screens shown once a user is signed
// in. Each panel owns its lists and in-flight flags and fetches on its own;
// nothing is shared between panels.
package dashboard

import (
	"context"

	"food-delivery-client/models"
)

// Kind names one of the three dashboards
type Kind string

const (
	KindCustomer Kind = "customer"
	KindDriver   Kind = "driver"
	KindAdmin    Kind = "admin"
)

// Route picks the dashboard for role. Anything that is not Admin or Driver,
// including an empty role, gets the customer dashboard.
func Route(role models.UserRole) Kind {
	switch role {
	case models.RoleAdmin:
		return KindAdmin
	case models.RoleDriver:
		return KindDriver
	default:
		return KindCustomer
	}
}

// View is a role dashboard made of tabbed panels
type View interface {
	Kind() Kind
	Tabs() []string
	ActiveTab() string
	// Open makes tab active. Switching tabs discards the previous panel's
	// state and mounts a fresh panel; reopening the active tab is a no-op.
	// Unknown tabs are ignored.
	Open(ctx context.Context, tab string)
}

// NewView builds and mounts the dashboard for role
func NewView(ctx context.Context, role models.UserRole, backend Backend, notify Notifier) View {
	var v View
	switch Route(role) {
	case KindAdmin:
		v = &AdminView{backend: backend, notify: notify}
	case KindDriver:
		v = &DriverView{backend: backend, notify: notify}
	default:
		v = &CustomerView{backend: backend, notify: notify}
	}
	v.Open(ctx, v.Tabs()[0])
	return v
}
