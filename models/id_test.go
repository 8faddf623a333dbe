package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_PreservesJSONKind(t *testing.T) {
	var r struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":42,"b":"3f2a-11","c":null}`), &r))

	assert.Equal(t, "42", r.A.String())
	assert.Equal(t, "3f2a-11", r.B.String())
	assert.True(t, r.C.IsZero())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":42,"b":"3f2a-11","c":""}`, string(out))
}

func TestID_RejectsGarbage(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestParseID(t *testing.T) {
	assert.Equal(t, NumericID(12), ParseID("12"))
	assert.Equal(t, StringID("abc"), ParseID("abc"))
	assert.True(t, ParseID("12").Equal(StringID("12")))
}

func TestSession_DisplayName(t *testing.T) {
	s := &Session{Identity: Identity{FullName: "Ana", Email: "a@x.com"}}
	assert.Equal(t, "Ana", s.DisplayName())
	s.FullName = ""
	assert.Equal(t, "a@x.com", s.DisplayName())
	s.Email = ""
	assert.Equal(t, "User", s.DisplayName())
}

func TestUserRole_Label(t *testing.T) {
	assert.Equal(t, "Administrator", RoleAdmin.Label())
	assert.Equal(t, "Driver", RoleDriver.Label())
	assert.Equal(t, "Chef", UserRole("Chef").Label())
}
