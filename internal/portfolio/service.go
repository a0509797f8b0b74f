package portfolio

import (
	"context"
	"errors"
	"fmt"

	"MeAPI_Playground/internal/models"
	"MeAPI_Playground/internal/storage"
)

// Store is the part of storage.ProfileStore the service needs.
type Store interface {
	LoadLatestProfile(ctx context.Context) (models.Profile, error)
	CreateProfile(ctx context.Context, p *models.Profile) error
	SaveProfile(ctx context.Context, p *models.Profile) error
}

// Service answers profile queries. Every call reads the latest profile from
// the store; nothing is cached between calls.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Profile(ctx context.Context) (models.Profile, error) {
	return s.load(ctx)
}

func (s *Service) Projects(ctx context.Context, skill string) ([]models.Project, error) {
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	projects := FilterProjectsBySkill(p, skill)
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Search validates query before touching the store, so a missing query is
// reported even when no profile exists.
func (s *Service) Search(ctx context.Context, query string) (SearchResult, error) {
	if query == "" {
		return Search(models.Profile{}, query)
	}
	p, err := s.load(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	return Search(p, query)
}

func (s *Service) TopSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return TopSkills(p, limit), nil
}

func (s *Service) CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err := s.store.CreateProfile(ctx, &p); err != nil {
		return models.Profile{}, translateStoreError(err)
	}
	return p, nil
}

// UpdateProfile applies patch on top of the latest profile and saves it.
func (s *Service) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Profile, error) {
	p, err := s.load(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	patch.Apply(&p)
	p.Normalize()
	if err := p.Validate(); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err := s.store.SaveProfile(ctx, &p); err != nil {
		return models.Profile{}, translateStoreError(err)
	}
	return p, nil
}

func (s *Service) load(ctx context.Context) (models.Profile, error) {
	p, err := s.store.LoadLatestProfile(ctx)
	if err != nil {
		return models.Profile{}, translateStoreError(err)
	}
	return p, nil
}

func translateStoreError(err error) error {
	switch {
	case errors.Is(err, storage.ErrProfileNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrEmailExists):
		return ErrEmailExists
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
