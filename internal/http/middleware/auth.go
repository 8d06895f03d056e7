package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const customerIDKey = "customer_id"

// JWTSecret resolves the signing key from the environment with a dev fallback.
func JWTSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "dev-secret-key-change-in-production"
	}
	return []byte(secret)
}

// NewCustomerToken signs a 24h bearer token for the customer.
func NewCustomerToken(customerID int64, code string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": customerID,
		"code":        code,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(JWTSecret())
}

// RequireAuth validates the bearer token and stores the customer id in the
// context. Handlers pass that id into the services explicitly; no session
// state lives outside the request.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		id, ok := claims["customer_id"].(float64)
		if !ok || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(customerIDKey, int64(id))
		c.Next()
	}
}

// GetCustomerID returns the authenticated customer id, zero when absent.
func GetCustomerID(c *gin.Context) int64 {
	if v, ok := c.Get(customerIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RequireAdmin guards the administrative endpoints with a shared key.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := strings.TrimSpace(os.Getenv("ADMIN_SECRET_KEY"))
		if expected == "" {
			expected = "dev-admin-secret"
		}
		if c.GetHeader("X-Admin-Key") != expected {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin key required"})
			return
		}
		c.Next()
	}
}
