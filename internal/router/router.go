package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "billingdesk/docs"
	"billingdesk/internal/handler"
	"billingdesk/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	invoiceH *handler.InvoiceHandler,
	discountH *handler.DiscountHandler,
	exportH *handler.ExportHandler,
	notificationH *handler.NotificationHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Invoice routes (read-only views over the upstream billing API)
	accounts := v1.Group("/accounts/:partnerId")
	accounts.GET("/invoices", invoiceH.List)
	accounts.GET("/invoices/metrics", invoiceH.Metrics)
	accounts.GET("/invoices/aging", invoiceH.Aging)
	accounts.GET("/invoices/invoicetypes", invoiceH.InvoiceTypes)
	accounts.GET("/invoices/:invoiceNo", invoiceH.Detail)
	accounts.GET("/invoices/:invoiceNo/vendors", invoiceH.VendorView)
	accounts.GET("/invoices/:invoiceNo/export", exportH.Export)
	accounts.POST("/invoices/reminders", notificationH.SendReminders)

	// Discount overrides
	discounts := v1.Group("/tenant-discounts")
	discounts.GET("", discountH.List)
	discounts.PUT("", discountH.Upsert)
	discounts.DELETE("", discountH.Delete)

	return r
}
