package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authpkg "github.com/Fatimadayan/Sooqbot/auth"
)

// RequireStoreToken validates a Bearer dashboard token and places the
// bound store id into the gin context under "store_id".
func RequireStoreToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenString := authHeader[7:]

		claims, err := authpkg.ParseAndValidate(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("store_id", claims.StoreID)
		c.Next()
	}
}
