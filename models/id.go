package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a backend identifier. The backend may emit numbers or strings; the
// JSON kind it arrived with is kept so request bodies echo it back unchanged.
type ID struct {
	value   string
	numeric bool
}

func NumericID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

func StringID(s string) ID {
	return ID{value: s}
}

// ParseID builds an ID from a path segment. Integer-looking values are numeric.
func ParseID(s string) ID {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID{value: s, numeric: true}
	}
	return ID{value: s}
}

func (id ID) String() string { return id.value }

func (id ID) IsZero() bool { return id.value == "" }

// Equal compares identifiers by their textual form
func (id ID) Equal(other ID) bool { return id.value == other.value }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}
