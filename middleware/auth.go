package middleware

import (
	"net/http"
	"strings"

	"inkwell/services"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID is the gin context key carrying the authenticated
	// user's ID.
	ContextUserID = "user_id"
	// ContextTokenID carries the JWT ID of the presented token, needed
	// by logout to revoke it.
	ContextTokenID = "token_id"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	// Browsers cannot set headers on websocket upgrades, so the feed
	// endpoint passes the token as a query parameter instead.
	return c.Query("token")
}

// AuthRequired rejects requests without a valid, unrevoked bearer token.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		userID, tokenID, err := auth.ResolveToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextTokenID, tokenID)
		c.Next()
	}
}

// AuthOptional resolves a bearer token when one is presented but lets
// anonymous requests through. Invalid tokens are treated as anonymous.
func AuthOptional(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, tokenID, err := auth.ResolveToken(token); err == nil {
				c.Set(ContextUserID, userID)
				c.Set(ContextTokenID, tokenID)
			}
		}
		c.Next()
	}
}
