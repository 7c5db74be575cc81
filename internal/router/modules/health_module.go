package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stadsloket/registration-api/internal/interface/http"
)

// HealthModule exposes the deployment probe at GET /api/healthz.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Handler.Check)
}
