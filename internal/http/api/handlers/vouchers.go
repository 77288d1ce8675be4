package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drs-net/billing-backend/internal/models"
	"github.com/drs-net/billing-backend/internal/voucher"
)

// VoucherHandler handles voucher issue and redemption endpoints.
type VoucherHandler struct {
	ledger *voucher.Ledger
}

// NewVoucherHandler constructs a VoucherHandler.
func NewVoucherHandler(ledger *voucher.Ledger) *VoucherHandler {
	return &VoucherHandler{ledger: ledger}
}

// issueVoucherRequest defines the request body for voucher creation.
type issueVoucherRequest struct {
	Code      string `json:"code"`
	PackageID string `json:"packageId"`
}

// redeemVoucherRequest defines the request body for voucher redemption.
type redeemVoucherRequest struct {
	Code string `json:"code"`
	User string `json:"user"`
}

// voucherDTO defines the voucher response payload.
type voucherDTO struct {
	Code      string     `json:"code"`
	PackageID string     `json:"packageId"`
	Used      bool       `json:"used"`
	UsedBy    *string    `json:"usedBy,omitempty"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toVoucherDTO(v *models.Voucher) voucherDTO {
	return voucherDTO{
		Code:      v.Code,
		PackageID: v.PlanID,
		Used:      v.Used,
		UsedBy:    v.UsedBy,
		UsedAt:    v.UsedAt,
		CreatedAt: v.CreatedAt,
	}
}

// Issue creates a new unused voucher under a caller-chosen code.
func (h *VoucherHandler) Issue(c *gin.Context) {
	var body issueVoucherRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	created, errIssue := h.ledger.Issue(c.Request.Context(), body.Code, body.PackageID)
	switch {
	case errIssue == nil:
		c.JSON(http.StatusOK, gin.H{"message": "voucher created", "voucher": toVoucherDTO(created)})
	case errors.Is(errIssue, voucher.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "voucher code already exists"})
	case errors.Is(errIssue, voucher.ErrEmptyCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create voucher failed"})
	}
}

// Redeem marks a voucher used by the given user, exactly once.
//
// AlreadyRedeemed intentionally maps to 400 rather than 409 to preserve the
// existing interface contract.
func (h *VoucherHandler) Redeem(c *gin.Context) {
	var body redeemVoucherRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}
	if strings.TrimSpace(body.User) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user is required"})
		return
	}

	redeemed, errRedeem := h.ledger.Redeem(c.Request.Context(), body.Code, body.User)
	switch {
	case errRedeem == nil:
		c.JSON(http.StatusOK, gin.H{"message": "voucher redeemed", "voucher": toVoucherDTO(redeemed)})
	case errors.Is(errRedeem, voucher.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "voucher not found"})
	case errors.Is(errRedeem, voucher.ErrAlreadyRedeemed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "voucher already used"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "redeem voucher failed"})
	}
}
