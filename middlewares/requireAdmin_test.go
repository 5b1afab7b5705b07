package middlewares

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsAllowedAdmin_EmailList(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "owner@dpshop.in, manager@dpshop.in")

	assert.True(t, IsAllowedAdmin(jwt.MapClaims{"email": "owner@dpshop.in"}))
	assert.True(t, IsAllowedAdmin(jwt.MapClaims{"email": "Manager@DPShop.in"}))

	// The list overrides the role claim entirely.
	assert.False(t, IsAllowedAdmin(jwt.MapClaims{"email": "intruder@example.com", "role": "admin"}))
	assert.False(t, IsAllowedAdmin(jwt.MapClaims{"role": "admin"}))
}

func TestIsAllowedAdmin_RoleFallback(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")

	assert.True(t, IsAllowedAdmin(jwt.MapClaims{"email": "anyone@example.com", "role": "admin"}))
	assert.False(t, IsAllowedAdmin(jwt.MapClaims{"email": "anyone@example.com", "role": "user"}))
	assert.False(t, IsAllowedAdmin(jwt.MapClaims{"email": "anyone@example.com"}))
	assert.False(t, IsAllowedAdmin(jwt.MapClaims{}))
}
