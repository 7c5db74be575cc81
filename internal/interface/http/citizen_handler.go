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

type CitizenHandler struct {
	Svc    *regapp.RegistrationService
	Logger *logrus.Logger
}

func NewCitizenHandler(svc *regapp.RegistrationService, logger *logrus.Logger) *CitizenHandler {
	return &CitizenHandler{Svc: svc, Logger: logger}
}

func (h *CitizenHandler) Create(c *gin.Context) {
	var req entity.CitizenInsert
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Aggregate(validation.ToDetails(err)))
		return
	}

	citizen, err := h.Svc.CreateCitizen(c.Request.Context(), &req)
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			response.Error(c, http.StatusConflict, "Een burger met dit e-mailadres is al geregistreerd")
			return
		}
		h.Logger.WithError(err).WithFields(requestFields(c)).Error("create citizen failed")
		response.Error(c, http.StatusInternalServerError, "Er is een fout opgetreden bij het registreren")
		return
	}
	response.Entity(c, http.StatusCreated, citizen)
}

func (h *CitizenHandler) GetByID(c *gin.Context) {
	citizen, err := h.Svc.GetCitizen(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).WithFields(requestFields(c)).WithField("id", c.Param("id")).Error("get citizen failed")
		response.Error(c, http.StatusInternalServerError, "Er is een fout opgetreden")
		return
	}
	if citizen == nil {
		response.Error(c, http.StatusNotFound, "Burger niet gevonden")
		return
	}
	response.Entity(c, http.StatusOK, citizen)
}
