package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// serviceName identifies this service in health responses.
const serviceName = "ustva"

// HealthHandler reports liveness and readiness of the filing service.
type HealthHandler struct {
	db             *sqlx.DB
	archiveEnabled bool
}

// NewHealthHandler creates a new HealthHandler. archiveEnabled mirrors the
// export configuration so operators can see whether XML archiving is on.
func NewHealthHandler(db *sqlx.DB, archiveEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, archiveEnabled: archiveEnabled}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}

// Readiness handles GET /readyz. The service is ready once the filing
// database answers a ping; the archive is optional and only reported.
func (h *HealthHandler) Readiness(c *gin.Context) {
	resp := gin.H{
		"status":          "ok",
		"service":         serviceName,
		"archive_enabled": h.archiveEnabled,
	}
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		resp["status"] = "unavailable"
		resp["error"] = "database not reachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
