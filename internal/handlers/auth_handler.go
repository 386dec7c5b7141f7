// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IssueToken hands out an access token to any email that has a user record.
func (h *Handler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	_, err := h.Users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}
	if err != nil {
		utils.AbortWithServerError(c, "failed to look up user", err)
		return
	}

	token, err := h.Tokens.Issue(email)
	if err != nil {
		utils.AbortWithServerError(c, "could not generate token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// Login is the password variant of IssueToken for users who registered with one.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		utils.AbortWithServerError(c, "failed to look up user", err)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		log.Printf("Login: rejected credentials for %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		utils.AbortWithServerError(c, "could not generate token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token, "user": user})
}
