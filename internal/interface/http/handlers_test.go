package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	regapp "github.com/stadsloket/registration-api/internal/application"
	"github.com/stadsloket/registration-api/internal/domain/entity"
	"github.com/stadsloket/registration-api/internal/domain/repository"
	handlers "github.com/stadsloket/registration-api/internal/interface/http"
	"github.com/stadsloket/registration-api/internal/interface/middleware"
	"github.com/stadsloket/registration-api/internal/router"
	"github.com/stadsloket/registration-api/internal/router/modules"
	"github.com/stadsloket/registration-api/pkg/response"
	"github.com/stadsloket/registration-api/pkg/validation"
)

type fakeCitizenRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.Citizen
	byEmail map[string]*entity.Citizen
	failErr error
}

func newFakeCitizenRepo() *fakeCitizenRepo {
	return &fakeCitizenRepo{byID: map[string]*entity.Citizen{}, byEmail: map[string]*entity.Citizen{}}
}

func (f *fakeCitizenRepo) Create(_ context.Context, in *entity.CitizenInsert) (*entity.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	if _, ok := f.byEmail[in.Email]; ok {
		return nil, &repository.ConflictError{Table: "citizens", Column: "email"}
	}
	c := &entity.Citizen{
		ID:                uuid.NewString(),
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		City:              in.City,
		PreferredLanguage: in.PreferredLanguage,
		AcceptPrivacy:     in.AcceptPrivacy,
		Type:              entity.TypeCitizen,
		CreatedAt:         time.Now().UTC(),
	}
	f.byID[c.ID] = c
	f.byEmail[c.Email] = c
	return c, nil
}

func (f *fakeCitizenRepo) GetByID(_ context.Context, id string) (*entity.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeCitizenRepo) GetByEmail(_ context.Context, email string) (*entity.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byEmail[email], nil
}

type fakePartnerRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.Partner
	byEmail map[string]*entity.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{byID: map[string]*entity.Partner{}, byEmail: map[string]*entity.Partner{}}
}

func (f *fakePartnerRepo) Create(_ context.Context, in *entity.PartnerInsert) (*entity.Partner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[in.Email]; ok {
		return nil, &repository.ConflictError{Table: "partners", Column: "email"}
	}
	p := &entity.Partner{
		ID:            uuid.NewString(),
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		PartnerType:   in.PartnerType,
		Email:         in.Email,
		Phone:         in.Phone,
		City:          in.City,
		Description:   in.Description,
		AcceptPrivacy: in.AcceptPrivacy,
		Type:          entity.TypePartner,
		CreatedAt:     time.Now().UTC(),
	}
	f.byID[p.ID] = p
	f.byEmail[p.Email] = p
	return p, nil
}

func (f *fakePartnerRepo) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakePartnerRepo) GetByEmail(_ context.Context, email string) (*entity.Partner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byEmail[email], nil
}

func newTestRouter(cit repository.CitizenRepository, par repository.PartnerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := regapp.NewRegistrationService(cit, par, nil, 0, nil, "", nil, logger)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	reg := router.NewRegistry(r)
	reg.Add(modules.NewRegistrationModule(
		handlers.NewCitizenHandler(svc, logger),
		handlers.NewPartnerHandler(svc, logger),
		handlers.NewSearchHandler(svc, logger),
	))
	reg.RegisterAll()
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func aminaPayload() map[string]any {
	return map[string]any{
		"firstName":         "Amina",
		"lastName":          "Yilmaz",
		"email":             "amina@example.com",
		"preferredLanguage": "nl",
		"acceptPrivacy":     true,
	}
}

func TestCreateCitizen(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())
	start := time.Now().UTC().Truncate(time.Second)

	rec := doJSON(r, http.MethodPost, "/api/citizens", aminaPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var c entity.Citizen
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	require.NotEmpty(t, c.ID)
	require.Equal(t, "burger", c.Type)
	require.Equal(t, "amina@example.com", c.Email)
	require.False(t, c.CreatedAt.Before(start))
}

func TestCreateCitizenDuplicateEmail(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	rec := doJSON(r, http.MethodPost, "/api/citizens", aminaPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/citizens", aminaPayload())
	require.Equal(t, http.StatusConflict, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Een burger met dit e-mailadres is al geregistreerd", body.Error)
}

func TestCreateCitizenPrivacyNotAccepted(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	payload := aminaPayload()
	payload["acceptPrivacy"] = false

	rec := doJSON(r, http.MethodPost, "/api/citizens", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Validation failed", body.Error)
	require.Contains(t, body.Details, "acceptPrivacy")
}

func TestCreateCitizenInvalidJSON(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/citizens", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCitizenStorageFailure(t *testing.T) {
	cit := newFakeCitizenRepo()
	cit.failErr = errors.New("connection reset")
	r := newTestRouter(cit, newFakePartnerRepo())

	rec := doJSON(r, http.MethodPost, "/api/citizens", aminaPayload())
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Er is een fout opgetreden bij het registreren", body.Error)
	require.NotContains(t, rec.Body.String(), "connection reset")
}

func TestCitizenRoundTrip(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	rec := doJSON(r, http.MethodPost, "/api/citizens", aminaPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Citizen
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(r, http.MethodGet, "/api/citizens/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched entity.Citizen
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	require.Equal(t, created, fetched)
}

func TestGetCitizenNotFound(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	rec := doJSON(r, http.MethodGet, "/api/citizens/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Burger niet gevonden", body.Error)
}

func TestCreatePartner(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	rec := doJSON(r, http.MethodPost, "/api/partners", map[string]any{
		"companyName":   "Groenwerk BV",
		"contactPerson": "J. de Vries",
		"partnerType":   "bedrijf",
		"email":         "info@groenwerk.nl",
		"acceptPrivacy": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var p entity.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.NotEmpty(t, p.ID)
	require.Equal(t, "partner", p.Type)
}

func TestCreatePartnerMissingCompanyName(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	rec := doJSON(r, http.MethodPost, "/api/partners", map[string]any{
		"contactPerson": "J. de Vries",
		"partnerType":   "bedrijf",
		"email":         "info@groenwerk.nl",
		"acceptPrivacy": true,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Details, "companyName")
}

func TestCreatePartnerDuplicateEmail(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	payload := map[string]any{
		"companyName":   "Groenwerk BV",
		"contactPerson": "J. de Vries",
		"partnerType":   "bedrijf",
		"email":         "info@groenwerk.nl",
		"acceptPrivacy": true,
	}
	rec := doJSON(r, http.MethodPost, "/api/partners", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	payload["companyName"] = "Ander Bedrijf"
	rec = doJSON(r, http.MethodPost, "/api/partners", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Een partner met dit e-mailadres is al geregistreerd", body.Error)
}

func TestGetPartnerNotFound(t *testing.T) {
	r := newTestRouter(newFakeCitizenRepo(), newFakePartnerRepo())

	rec := doJSON(r, http.MethodGet, "/api/partners/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Partner niet gevonden", body.Error)
}
