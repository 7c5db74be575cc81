package router

import (
	regapp "github.com/stadsloket/registration-api/internal/application"
	"github.com/stadsloket/registration-api/internal/container"
	pginfra "github.com/stadsloket/registration-api/internal/infrastructure/postgres"
	handlers "github.com/stadsloket/registration-api/internal/interface/http"
	"github.com/stadsloket/registration-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and adds it to the registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	citizenRepo := pginfra.NewCitizenRepository(container.GetPGPool())
	partnerRepo := pginfra.NewPartnerRepository(container.GetPGPool())

	svc := regapp.NewRegistrationService(
		citizenRepo,
		partnerRepo,
		container.GetRedis(),
		cfg.CacheTTL,
		container.GetES(),
		cfg.ESRegistrationsIndex,
		container.GetRabbitPub(),
		container.GetLogger(),
	)

	r.Add(modules.NewRegistrationModule(
		handlers.NewCitizenHandler(svc, container.GetLogger()),
		handlers.NewPartnerHandler(svc, container.GetLogger()),
		handlers.NewSearchHandler(svc, container.GetLogger()),
	))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool())))
}
