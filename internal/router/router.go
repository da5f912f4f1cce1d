package router

import (
	"github.com/gin-gonic/gin"

	"ustva/internal/handler"
	"ustva/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	clientH *handler.ClientHandler,
	reportH *handler.VatReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Client registry
	r.POST("/clients", clientH.Register)
	r.GET("/clients", clientH.List)
	r.GET("/clients/search", clientH.Search)

	// VAT reports
	r.POST("/vat-reports", reportH.CreateOrGet)
	r.GET("/vat-reports", reportH.List)
	r.GET("/vat-reports/xlsx", reportH.ExportXLSX)
	r.GET("/vat-reports/:id/xml", reportH.ExportXML)

	return r
}
