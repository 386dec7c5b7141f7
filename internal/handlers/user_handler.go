package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

// CreateUserRequest never carries a role: new users are plain users until
// an admin promotes them.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:    primitive.NewObjectID(),
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			utils.AbortWithServerError(c, "failed to hash password", err)
			return
		}
		user.Password = hashed
	}

	ack, err := h.Users.Insert(c.Request.Context(), &user)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusOK, models.Rejected("An account with this email already exists"))
		return
	}
	if err != nil {
		utils.AbortWithServerError(c, "failed to create user", err)
		return
	}
	log.Printf("CreateUser: registered %s", user.Email)
	c.JSON(http.StatusOK, ack)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context(), nil)
	if err != nil {
		respondStoreError(c, "failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin answers whether the email belongs to an admin. Unknown emails
// are simply not admins.
func (h *Handler) CheckAdmin(c *gin.Context) {
	user, err := h.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.AbortWithServerError(c, "failed to look up user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
}

// MakeAdmin promotes the :id user. The route sits behind AdminMiddleware.
func (h *Handler) MakeAdmin(c *gin.Context) {
	ack, err := h.Users.SetRole(c.Request.Context(), c.Param("id"), models.RoleAdmin)
	if err != nil {
		respondStoreError(c, "failed to update user role", err)
		return
	}
	log.Printf("MakeAdmin: user %s promoted", c.Param("id"))
	c.JSON(http.StatusOK, ack)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	ack, err := h.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to delete user", err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
