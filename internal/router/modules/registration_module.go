package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stadsloket/registration-api/internal/interface/http"
)

// RegistrationModule wires the citizen and partner routes:
// POST /api/citizens, GET /api/citizens/:id
// POST /api/partners, GET /api/partners/:id
// GET /api/registrations/search (back office)
type RegistrationModule struct {
	Citizens *handlers.CitizenHandler
	Partners *handlers.PartnerHandler
	Search   *handlers.SearchHandler
}

func NewRegistrationModule(citizens *handlers.CitizenHandler, partners *handlers.PartnerHandler, search *handlers.SearchHandler) *RegistrationModule {
	return &RegistrationModule{Citizens: citizens, Partners: partners, Search: search}
}

func (m *RegistrationModule) Register(rg *gin.RouterGroup) {
	rg.POST("/citizens", m.Citizens.Create)
	rg.GET("/citizens/:id", m.Citizens.GetByID)

	rg.POST("/partners", m.Partners.Create)
	rg.GET("/partners/:id", m.Partners.GetByID)

	rg.GET("/registrations/search", m.Search.Search)
}
