package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stadsloket/registration-api/internal/domain/entity"
	repo "github.com/stadsloket/registration-api/internal/domain/repository"
	"github.com/stadsloket/registration-api/pkg/helpers"
	"github.com/stadsloket/registration-api/pkg/mailer"
)

// RegistrationService orchestrates citizen and partner registration.
// Redis, Elasticsearch and the mail queue are optional collaborators:
// when nil (or failing) the registration itself still succeeds; only the
// unique index and the insert decide the outcome.
type RegistrationService struct {
	Citizens repo.CitizenRepository
	Partners repo.PartnerRepository

	Redis    *redis.Client
	CacheTTL time.Duration

	ES      *elasticsearch.Client
	ESIndex string

	MailQueue *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewRegistrationService(citizens repo.CitizenRepository, partners repo.PartnerRepository, rdb *redis.Client, cacheTTL time.Duration, es *elasticsearch.Client, esIndex string, mailQueue *helpers.RabbitPublisher, logger *logrus.Logger) *RegistrationService {
	return &RegistrationService{
		Citizens:  citizens,
		Partners:  partners,
		Redis:     rdb,
		CacheTTL:  cacheTTL,
		ES:        es,
		ESIndex:   esIndex,
		MailQueue: mailQueue,
		Logger:    logger,
	}
}

func citizenCacheKey(id string) string { return "registration:citizen:" + id }
func partnerCacheKey(id string) string { return "registration:partner:" + id }

func (s *RegistrationService) CreateCitizen(ctx context.Context, in *entity.CitizenInsert) (*entity.Citizen, error) {
	c, err := s.Citizens.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.indexRegistration(ctx, c.ID, map[string]any{
		"id":         c.ID,
		"name":       c.FirstName + " " + c.LastName,
		"email":      c.Email,
		"type":       c.Type,
		"created_at": c.CreatedAt.Format(time.RFC3339Nano),
	})
	s.queueConfirmation(ctx, c.Email, c.FirstName+" "+c.LastName, c.Type)

	return c, nil
}

func (s *RegistrationService) GetCitizen(ctx context.Context, id string) (*entity.Citizen, error) {
	if s.Redis != nil {
		var cached entity.Citizen
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, citizenCacheKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}
	c, err := s.Citizens.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, citizenCacheKey(id), c, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Warn("citizen cache write failed")
		}
	}
	return c, nil
}

func (s *RegistrationService) GetCitizenByEmail(ctx context.Context, email string) (*entity.Citizen, error) {
	return s.Citizens.GetByEmail(ctx, email)
}

func (s *RegistrationService) CreatePartner(ctx context.Context, in *entity.PartnerInsert) (*entity.Partner, error) {
	p, err := s.Partners.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.indexRegistration(ctx, p.ID, map[string]any{
		"id":         p.ID,
		"name":       p.CompanyName,
		"email":      p.Email,
		"type":       p.Type,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	})
	s.queueConfirmation(ctx, p.Email, p.ContactPerson, p.Type)

	return p, nil
}

func (s *RegistrationService) GetPartner(ctx context.Context, id string) (*entity.Partner, error) {
	if s.Redis != nil {
		var cached entity.Partner
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, partnerCacheKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}
	p, err := s.Partners.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, partnerCacheKey(id), p, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Warn("partner cache write failed")
		}
	}
	return p, nil
}

func (s *RegistrationService) GetPartnerByEmail(ctx context.Context, email string) (*entity.Partner, error) {
	return s.Partners.GetByEmail(ctx, email)
}

// queueConfirmation puts a confirmation-email job on the queue.
// Best-effort: a queue outage never fails the registration.
func (s *RegistrationService) queueConfirmation(ctx context.Context, email, name, kind string) {
	if s.MailQueue == nil {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateRegistrationConfirmation,
		Data: map[string]any{
			"Name": name,
			"Type": kind,
		},
	}
	if err := s.MailQueue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("confirmation email enqueue failed")
	}
}

// indexRegistration writes the registration into the search index.
// Best-effort, same contract as queueConfirmation.
func (s *RegistrationService) indexRegistration(ctx context.Context, id string, doc map[string]any) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: id, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Warn("registration index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("id", id).Warn("registration index response error")
	}
}

// SearchRegistrations runs a multi_match query over indexed registrations
// for back-office lookups.
func (s *RegistrationService) SearchRegistrations(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
