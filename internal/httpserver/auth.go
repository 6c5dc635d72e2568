package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shoemarket/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userCtxKey = "currentUser"

// authMiddleware validates the bearer JWT minted by the auth layer and
// injects the resolved user. Token issuance lives outside this service;
// only the shared HMAC secret is needed here.
func authMiddleware(secret []byte, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), sub)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}

		c.Set(userCtxKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
