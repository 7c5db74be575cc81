package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	regapp "github.com/stadsloket/registration-api/internal/application"
	"github.com/stadsloket/registration-api/internal/domain/entity"
	"github.com/stadsloket/registration-api/internal/domain/repository"
	"github.com/stadsloket/registration-api/pkg/response"
	"github.com/stadsloket/registration-api/pkg/validation"
)

type PartnerHandler struct {
	Svc    *regapp.RegistrationService
	Logger *logrus.Logger
}

func NewPartnerHandler(svc *regapp.RegistrationService, logger *logrus.Logger) *PartnerHandler {
	return &PartnerHandler{Svc: svc, Logger: logger}
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req entity.PartnerInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Aggregate(validation.ToDetails(err)))
		return
	}

	partner, err := h.Svc.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			response.Error(c, http.StatusConflict, "Een partner met dit e-mailadres is al geregistreerd")
			return
		}
		h.Logger.WithError(err).WithFields(requestFields(c)).Error("create partner failed")
		response.Error(c, http.StatusInternalServerError, "Er is een fout opgetreden bij het registreren")
		return
	}
	response.Entity(c, http.StatusCreated, partner)
}

func (h *PartnerHandler) GetByID(c *gin.Context) {
	partner, err := h.Svc.GetPartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).WithFields(requestFields(c)).WithField("id", c.Param("id")).Error("get partner failed")
		response.Error(c, http.StatusInternalServerError, "Er is een fout opgetreden")
		return
	}
	if partner == nil {
		response.Error(c, http.StatusNotFound, "Partner niet gevonden")
		return
	}
	response.Entity(c, http.StatusOK, partner)
}
