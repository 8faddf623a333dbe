package statemachine

import (
	"strconv"
	"strings"

	"food-delivery-client/models"
)

// Transition is a status change the backend performs in response to an
// admin panel action. The client never applies it locally.
type Transition struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Action string
}

const (
	ActionAssign  = "assign"
	ActionDeliver = "delivered"
)

// lifecycle lists statuses in the order the backend moves through them.
// Numeric status enums index into it.
var lifecycle = []models.OrderStatus{
	models.StatusPending,
	models.StatusAssigned,
	models.StatusDelivered,
}

var transitions = []Transition{
	{From: models.StatusPending, To: models.StatusAssigned, Action: ActionAssign},
	{From: models.StatusAssigned, To: models.StatusDelivered, Action: ActionDeliver},
}

// aliases maps lower-cased backend spellings onto canonical statuses
var aliases = func() map[string]models.OrderStatus {
	m := map[string]models.OrderStatus{
		"created":     models.StatusPending,
		"placed":      models.StatusPending,
		"inprogress":  models.StatusAssigned,
		"in_progress": models.StatusAssigned,
		"pickedup":    models.StatusAssigned,
		"picked_up":   models.StatusAssigned,
	}
	for _, s := range lifecycle {
		m[strings.ToLower(string(s))] = s
	}
	return m
}()

// Normalize maps a raw JSON status value (string or numeric enum) to an
// OrderStatus. Unknown strings are kept verbatim, unknown numbers as digits.
func Normalize(raw any) models.OrderStatus {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(v)
		if st, ok := aliases[strings.ToLower(s)]; ok {
			return st
		}
		return models.OrderStatus(s)
	case float64:
		i := int(v)
		if float64(i) == v && i >= 0 && i < len(lifecycle) {
			return lifecycle[i]
		}
		return models.OrderStatus(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return ""
	}
}

// ExpectedAfter returns the status the backend should report once action
// succeeds on an order in status from.
func ExpectedAfter(from models.OrderStatus, action string) (models.OrderStatus, bool) {
	for _, t := range transitions {
		if t.From == from && t.Action == action {
			return t.To, true
		}
	}
	return "", false
}

// Label renders a status for display
func Label(s models.OrderStatus) string {
	if s == "" {
		return "Unknown"
	}
	return string(s)
}
