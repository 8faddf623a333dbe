package session

import (
	"context"
	"errors"
	"testing"

	"food-delivery-client/api"
	"food-delivery-client/models"
	"food-delivery-client/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	resp       api.LoginResponse
	err        error
	registered []string
}

func (f *fakeAuth) Login(context.Context, string, string) (api.LoginResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuth) RegisterCustomer(_ context.Context, fullName, email, _ string) error {
	f.registered = append(f.registered, fullName+"|"+email)
	return f.err
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestManager_LoginPersistsAndDecodes(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	tok := signed(t, jwt.MapClaims{"role": "Admin", "email": "a@x.com"})
	m := NewManager(store, &fakeAuth{resp: api.LoginResponse{Token: tok}})

	s, err := m.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.Identity{Role: models.RoleAdmin, Email: "a@x.com"}, s.Identity)
	assert.Equal(t, tok, s.Token)

	stored, _ := store.Token(ctx)
	assert.Equal(t, tok, stored)
	assert.Equal(t, s, m.Current())
}

func TestManager_LoginAcceptsAlternateTokenFields(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"role": "Driver"})
	for _, resp := range []api.LoginResponse{{AccessToken: tok}, {JWT: tok}} {
		m := NewManager(storage.NewMemoryStore(), &fakeAuth{resp: resp})
		s, err := m.Login(context.Background(), "d@x.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, models.RoleDriver, s.Role)
	}
}

func TestManager_LoginWithoutToken(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, &fakeAuth{})

	_, err := m.Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Nil(t, m.Current())
	stored, _ := store.Token(context.Background())
	assert.Empty(t, stored)
}

func TestManager_LoginBackendError(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), &fakeAuth{err: &api.Error{Status: 400, Message: "Invalid credentials"}})
	_, err := m.Login(context.Background(), "a@x.com", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Nil(t, m.Current())
}

func TestManager_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	tok := signed(t, jwt.MapClaims{"role": "Driver", "fullName": "Dana", "email": "d@x.com"})

	first := NewManager(store, &fakeAuth{resp: api.LoginResponse{Token: tok}})
	loggedIn, err := first.Login(ctx, "d@x.com", "pw")
	require.NoError(t, err)

	// a fresh manager over the same store stands in for a restart
	second := NewManager(store, &fakeAuth{})
	restored, err := second.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, loggedIn.Identity, restored.Identity)
}

func TestManager_RestoreWithoutToken(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), &fakeAuth{})
	s, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Nil(t, m.Current())
}

func TestManager_RestoreUndecodableTokenDefaultsToCustomer(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetToken(ctx, "garbage"))

	s, err := NewManager(store, &fakeAuth{}).Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, s.Role)
}

func TestManager_Logout(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store, &fakeAuth{resp: api.LoginResponse{Token: signed(t, jwt.MapClaims{"role": "Admin"})}})
	_, err := m.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	assert.Nil(t, m.Current())
	stored, _ := store.Token(ctx)
	assert.Empty(t, stored)
}

func TestManager_RegisterDoesNotSignIn(t *testing.T) {
	auth := &fakeAuth{}
	m := NewManager(storage.NewMemoryStore(), auth)

	require.NoError(t, m.RegisterCustomer(context.Background(), "Ana", "ana@x.com", "pw"))
	assert.Equal(t, []string{"Ana|ana@x.com"}, auth.registered)
	assert.Nil(t, m.Current())

	auth.err = errors.New("Email already registered")
	assert.EqualError(t, m.RegisterCustomer(context.Background(), "Ana", "ana@x.com", "pw"), "Email already registered")
}
