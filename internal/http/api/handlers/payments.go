package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/drs-net/billing-backend/internal/models"
)

// PaymentHandler handles payment recording endpoints.
type PaymentHandler struct {
	db *gorm.DB
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

// recordPaymentRequest defines the request body for payment recording.
// Amount is accepted as-is; the reporting layer owns tolerant parsing.
type recordPaymentRequest struct {
	User   string          `json:"user"`
	Amount json.RawMessage `json:"amount"`
	Note   string          `json:"note"`
}

// paymentDTO defines the payment response payload.
type paymentDTO struct {
	Reference string          `json:"reference"`
	User      string          `json:"user,omitempty"`
	Amount    json.RawMessage `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Create records a payment exactly as submitted.
func (h *PaymentHandler) Create(c *gin.Context) {
	var body recordPaymentRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	payment := models.Payment{
		Reference: uuid.NewString(),
		UserEmail: strings.TrimSpace(body.User),
		Amount:    datatypes.JSON(body.Amount),
		Note:      strings.TrimSpace(body.Note),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&payment).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "record payment failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment recorded", "reference": payment.Reference})
}

// List returns all recorded payments.
func (h *PaymentHandler) List(c *gin.Context) {
	var payments []models.Payment
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("created_at ASC, id ASC").
		Find(&payments).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query payments failed"})
		return
	}

	resp := make([]paymentDTO, 0, len(payments))
	for _, payment := range payments {
		resp = append(resp, paymentDTO{
			Reference: payment.Reference,
			User:      payment.UserEmail,
			Amount:    json.RawMessage(payment.Amount),
			Note:      payment.Note,
			CreatedAt: payment.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
