package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

// CatalogService implements service-catalog use-cases.
type CatalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) Create(ctx context.Context, in ports.ServiceInput) (*domain.Service, error) {
	category := domain.ServiceCategory(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}

	now := time.Now().UTC()
	entry := &domain.Service{
		Name:            in.Name,
		Category:        category,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Description:     in.Description,
		Active:          true,
		DisplayOrder:    in.DisplayOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info().Str("service_id", created.ID).Str("category", in.Category).Msg("catalog entry created")
	return created, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, filter ports.ListServicesFilter) ([]*domain.Service, error) {
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) Update(ctx context.Context, id string, in ports.ServiceInput) (*domain.Service, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category := domain.ServiceCategory(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}

	entry.Name = in.Name
	entry.Category = category
	entry.DurationMinutes = in.DurationMinutes
	entry.Price = in.Price
	entry.Description = in.Description
	entry.DisplayOrder = in.DisplayOrder
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return entry, nil
}

func (s *CatalogService) Deactivate(ctx context.Context, id string) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	entry.Active = false
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	return nil
}
