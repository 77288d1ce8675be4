package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/drs-net/billing-backend/internal/http/api/handlers"
	"github.com/drs-net/billing-backend/internal/report"
	"github.com/drs-net/billing-backend/internal/voucher"
)

// RegisterRoutes registers the billing API routes.
//
// Route paths mirror the interface this service replaces, so existing
// clients keep working.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, summarizer report.Summarizer) {
	if r == nil || db == nil {
		return
	}

	r.GET("/", handlers.Health)

	userHandler := handlers.NewUserHandler(db)
	r.POST("/register", userHandler.Register)

	planHandler := handlers.NewPlanHandler(db)
	r.POST("/package", planHandler.Create)
	r.GET("/packages", planHandler.List)

	voucherHandler := handlers.NewVoucherHandler(voucher.NewLedger(db))
	r.POST("/voucher", voucherHandler.Issue)
	r.POST("/redeem", voucherHandler.Redeem)

	paymentHandler := handlers.NewPaymentHandler(db)
	r.POST("/payment", paymentHandler.Create)
	r.GET("/payments", paymentHandler.List)

	if summarizer == nil {
		summarizer = report.NewAggregator(db)
	}
	reportHandler := handlers.NewReportHandler(summarizer)
	r.GET("/reports/summary", reportHandler.Summary)
}
