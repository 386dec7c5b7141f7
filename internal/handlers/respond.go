package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xbayazid/medwin-cares-server/internal/middleware"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

// respondStoreError maps store errors onto responses. A missing document is
// not an HTTP error: the body is null with 200.
func respondStoreError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusOK, nil)
	default:
		utils.AbortWithServerError(c, msg, err)
	}
}

// requireSelf rejects the request unless email is the token's email.
func requireSelf(c *gin.Context, email string) bool {
	if email == "" || email != middleware.DecodedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return false
	}
	return true
}

// requireOwnerOrAdmin lets the record owner through, and otherwise checks
// the caller's role.
func (h *Handler) requireOwnerOrAdmin(c *gin.Context, ownerEmail string) bool {
	email := middleware.DecodedEmail(c)
	if email != "" && email == ownerEmail {
		return true
	}
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.AbortWithServerError(c, "failed to verify access", err)
		return false
	}
	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return false
	}
	return true
}
