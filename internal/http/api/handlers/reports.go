package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/drs-net/billing-backend/internal/report"
)

// ReportHandler handles aggregate reporting endpoints.
type ReportHandler struct {
	summarizer report.Summarizer
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(summarizer report.Summarizer) *ReportHandler {
	return &ReportHandler{summarizer: summarizer}
}

// Summary returns the best-effort aggregate over users, vouchers, and
// payments. Any scan failure fails the whole request.
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, errSummarize := h.summarizer.Summarize(c.Request.Context())
	if errSummarize != nil {
		log.WithError(errSummarize).Error("summary report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "summary report failed"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
