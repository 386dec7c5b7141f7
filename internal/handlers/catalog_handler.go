package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Specialty string `json:"specialty" binding:"required"`
	Image     string `json:"img"`
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"img"`
}

type CreateShopItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Image       string  `json:"img"`
}

func listAll[T any](c *gin.Context, coll store.Collection[T], name string) {
	docs, err := coll.List(c.Request.Context(), nil)
	if err != nil {
		respondStoreError(c, "failed to fetch "+name, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func getOne[T any](c *gin.Context, coll store.Collection[T], name string) {
	doc, err := coll.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to fetch "+name, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func insertOne[T any](c *gin.Context, coll store.Collection[T], doc *T, name string) {
	ack, err := coll.Insert(c.Request.Context(), doc)
	if err != nil {
		utils.AbortWithServerError(c, "failed to insert "+name, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func deleteOne[T any](c *gin.Context, coll store.Collection[T], name string) {
	ack, err := coll.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to delete "+name, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// --- DOCTORS ---

func (h *Handler) GetDoctors(c *gin.Context)   { listAll(c, h.Doctors, "doctors") }
func (h *Handler) GetDoctor(c *gin.Context)    { getOne(c, h.Doctors, "doctor") }
func (h *Handler) DeleteDoctor(c *gin.Context) { deleteOne(c, h.Doctors, "doctor") }

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	insertOne(c, h.Doctors, &models.Doctor{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	}, "doctor")
}

// --- DEPARTMENTS ---

func (h *Handler) GetDepartments(c *gin.Context)   { listAll(c, h.Departments, "departments") }
func (h *Handler) GetDepartment(c *gin.Context)    { getOne(c, h.Departments, "department") }
func (h *Handler) DeleteDepartment(c *gin.Context) { deleteOne(c, h.Departments, "department") }

func (h *Handler) CreateDepartment(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	insertOne(c, h.Departments, &models.Department{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}, "department")
}

// --- SHOP ---

func (h *Handler) GetShopItems(c *gin.Context)   { listAll(c, h.Shop, "shop items") }
func (h *Handler) GetShopItem(c *gin.Context)    { getOne(c, h.Shop, "shop item") }
func (h *Handler) DeleteShopItem(c *gin.Context) { deleteOne(c, h.Shop, "shop item") }

func (h *Handler) CreateShopItem(c *gin.Context) {
	var req CreateShopItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	insertOne(c, h.Shop, &models.ShopItem{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
	}, "shop item")
}
