// Package token decodes the identity claims carried by a bearer token.
// Signatures are never checked here; the backend verifies every request.
package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"food-delivery-client/models"

	"github.com/golang-jwt/jwt/v5"
)

// RoleClaimURI is the long-form role claim emitted by .NET identity servers
const RoleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extracts {role, fullName, email} from the payload segment of tok.
// It never fails: any malformed input yields models.DefaultIdentity().
func Decode(tok string) models.Identity {
	claims, ok := payload(tok)
	if !ok {
		return models.DefaultIdentity()
	}

	id := models.Identity{
		Role:     models.UserRole(firstString(claims, "role", RoleClaimURI)),
		FullName: firstString(claims, "fullName", "name"),
		Email:    firstString(claims, "email"),
	}
	if id.Role == "" {
		id.Role = models.RoleCustomer
	}
	if id.Email == "" {
		if sub, err := claims.GetSubject(); err == nil {
			id.Email = sub
		}
	}
	return id
}

func payload(tok string) (jwt.MapClaims, bool) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, false
	}
	raw, err := parser.DecodeSegment(parts[1])
	if err != nil {
		// tokens minted by hand sometimes use the standard alphabet
		if raw, err = base64.StdEncoding.DecodeString(pad(parts[1])); err != nil {
			return nil, false
		}
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, false
	}
	return claims, true
}

func pad(seg string) string {
	if m := len(seg) % 4; m != 0 {
		seg += strings.Repeat("=", 4-m)
	}
	return seg
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := claims[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
