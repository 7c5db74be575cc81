package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	regapp "github.com/stadsloket/registration-api/internal/application"
	"github.com/stadsloket/registration-api/pkg/response"
)

// SearchHandler serves back-office lookups over the registration search
// index. Returns an empty list when the index is not configured.
type SearchHandler struct {
	Svc    *regapp.RegistrationService
	Logger *logrus.Logger
}

func NewSearchHandler(svc *regapp.RegistrationService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Logger: logger}
}

func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.SearchRegistrations(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).WithFields(requestFields(c)).WithField("q", q).Error("registration search failed")
		response.Error(c, http.StatusInternalServerError, "Er is een fout opgetreden")
		return
	}
	response.Entity(c, http.StatusOK, hits)
}
