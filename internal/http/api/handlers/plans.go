package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drs-net/billing-backend/internal/models"
)

// PlanHandler handles service package endpoints.
type PlanHandler struct {
	db *gorm.DB
}

// NewPlanHandler constructs a PlanHandler.
func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// createPlanRequest defines the request body for package creation.
type createPlanRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Speed int     `json:"speed"`
	Time  int     `json:"time"`
	Type  string  `json:"type"`
}

// planDTO defines the package response payload.
type planDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Speed     int       `json:"speed"`
	Time      int       `json:"time"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Create persists a new service package.
func (h *PlanHandler) Create(c *gin.Context) {
	var body createPlanRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	plan := models.Plan{
		Name:         name,
		Price:        body.Price,
		SpeedMbps:    body.Speed,
		DurationDays: body.Time,
		Type:         strings.TrimSpace(body.Type),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&plan).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create package failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package created", "id": plan.ID})
}

// List returns all service packages.
func (h *PlanHandler) List(c *gin.Context) {
	var plans []models.Plan
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("created_at ASC, id ASC").
		Find(&plans).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query packages failed"})
		return
	}

	resp := make([]planDTO, 0, len(plans))
	for _, plan := range plans {
		resp = append(resp, planDTO{
			ID:        plan.ID,
			Name:      plan.Name,
			Price:     plan.Price,
			Speed:     plan.SpeedMbps,
			Time:      plan.DurationDays,
			Type:      plan.Type,
			CreatedAt: plan.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
