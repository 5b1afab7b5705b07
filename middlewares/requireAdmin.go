package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// IsAllowedAdmin is the authorization predicate for dashboard access.
// When ADMIN_EMAILS is set it is a membership check over that list;
// otherwise any account with the admin role is accepted.
func IsAllowedAdmin(claims jwt.MapClaims) bool {
	email, _ := claims["email"].(string)
	if allowed := os.Getenv("ADMIN_EMAILS"); allowed != "" {
		for _, entry := range strings.Split(allowed, ",") {
			if strings.EqualFold(strings.TrimSpace(entry), email) {
				return true
			}
		}
		return false
	}
	role, ok := claims["role"].(string)
	return ok && role == "admin"
}

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		claims := userClaims.(jwt.MapClaims)
		if !IsAllowedAdmin(claims) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Denied: you are not an operator of this dashboard"})
			return
		}

		ctx.Next()
	}
}
