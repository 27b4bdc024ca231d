package backend

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnavailable      = errors.New("backend not available")
	ErrTitleRequired    = errors.New("title required")
	ErrSurveyIDRequired = errors.New("survey id required")
	ErrDuplicate        = errors.New("record already exists")
)

type Service struct {
	repo  Repository
	avail Availability
}

func NewService(repo Repository, avail Availability) *Service {
	if repo == nil {
		avail.Available = false
	}
	return &Service{repo: repo, avail: avail}
}

func (s *Service) Availability() Availability {
	return s.avail
}

func (s *Service) ListForms(ctx context.Context) ([]FormRecord, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.repo.ListForms(ctx)
}

func (s *Service) CreateForm(ctx context.Context, f *FormRecord) error {
	if err := s.check(); err != nil {
		return err
	}
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return ErrTitleRequired
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Status == "" {
		f.Status = "draft"
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	return s.repo.CreateForm(ctx, f)
}

func (s *Service) ListResponses(ctx context.Context, surveyID string) ([]ResponseRecord, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.repo.ListResponses(ctx, surveyID)
}

func (s *Service) CreateResponse(ctx context.Context, r *ResponseRecord) error {
	if err := s.check(); err != nil {
		return err
	}
	if strings.TrimSpace(r.SurveyID) == "" {
		return ErrSurveyIDRequired
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = time.Now().UTC()
	}
	return s.repo.CreateResponse(ctx, r)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

// Ping reports whether the backend answers right now. It does not change the
// availability resolved at startup.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.repo.Ping(ctx)
}

func (s *Service) check() error {
	if !s.avail.Available {
		return ErrUnavailable
	}
	return nil
}
