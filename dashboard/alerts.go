package dashboard

import (
	"log"
	"sync"

	"food-delivery-client/api"
)

// Notifier shows a blocking message to the user
type Notifier interface {
	Alert(msg string)
}

// Alerts queues messages until the UI drains them on the next render
type Alerts struct {
	mu   sync.Mutex
	msgs []string
}

func (a *Alerts) Alert(msg string) {
	a.mu.Lock()
	a.msgs = append(a.msgs, msg)
	a.mu.Unlock()
}

// Drain returns and forgets every queued message
func (a *Alerts) Drain() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.msgs
	a.msgs = nil
	return out
}

// ValidationError is a precondition that failed before any call was made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(n Notifier, msg string) error {
	n.Alert(msg)
	return &ValidationError{Message: msg}
}

// fetchFailed reports a failed list load. The server message is logged only.
func fetchFailed(n Notifier, desc string, err error) {
	log.Printf("❌ %s: %v", desc, err)
	n.Alert(desc)
}

// mutationFailed reports a rejected change with the server's message appended
func mutationFailed(n Notifier, desc string, err error) {
	log.Printf("❌ %s: %v", desc, err)
	n.Alert(desc + ": " + api.Message(err))
}
