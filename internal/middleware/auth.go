package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

const (
	decodedEmailKey = "decodedEmail"
	currentUserKey  = "currentUser"
)

// TokenVerifier decodes a bearer token into its claims.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// UserFinder resolves the user record behind a token.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware rejects requests without a valid bearer token: 401 when the
// Authorization header is missing, 403 when the token does not verify.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Set(decodedEmailKey, claims.Email)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. It lets the request through
// only when the token's user holds the admin role.
func AdminMiddleware(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByEmail(c.Request.Context(), DecodedEmail(c))
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		if err != nil {
			utils.AbortWithServerError(c, "failed to verify admin", err)
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// DecodedEmail returns the email carried by the verified token, or "".
func DecodedEmail(c *gin.Context) string {
	return c.GetString(decodedEmailKey)
}

// CurrentUser returns the admin record loaded by AdminMiddleware, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
