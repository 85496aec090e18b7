package service

import (
	"context"

	"github.com/rs/zerolog"

	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/port"
)

// ChecklistItemService orchestrates one use case per operation. Mutating
// operations are gated by an existence check and emit one audit record per
// outcome; reads emit none.
type ChecklistItemService struct {
	repo   port.ChecklistItemRepository
	logger zerolog.Logger
}

func NewChecklistItemService(repo port.ChecklistItemRepository, logger zerolog.Logger) *ChecklistItemService {
	return &ChecklistItemService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ChecklistItemService) Create(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	created, err := s.repo.Save(ctx, item)

	if err != nil {
		s.logger.Error().Err(err).Str("name", item.Name).Msg("checklist item create failed")
		return domain.ChecklistItem{}, err
	}

	s.logger.Info().
		Str("action", "create").
		Int64("id", created.ID).
		Str("name", created.Name).
		Msg("checklist item created")

	return created, nil
}

func (s *ChecklistItemService) FindAll(ctx context.Context) ([]domain.ChecklistItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *ChecklistItemService) FindById(ctx context.Context, id int64) (domain.ChecklistItem, error) {
	return s.repo.FindById(ctx, id)
}

func (s *ChecklistItemService) Update(ctx context.Context, id int64, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	exists, err := s.repo.ExistsById(ctx, id)

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	if !exists {
		s.logger.Warn().
			Str("action", "update").
			Str("status", "not_found").
			Int64("id", id).
			Msg("checklist item update rejected")

		return domain.ChecklistItem{}, domain.NewChecklistItemNotFound(id)
	}

	// The repository replace is conditional on the id still existing, so a
	// delete racing this update surfaces as not-found rather than a silent
	// no-op success.
	updated, err := s.repo.Save(ctx, domain.ChecklistItem{
		ID:      id,
		Name:    item.Name,
		Checked: item.Checked,
	})

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	s.logger.Info().
		Str("action", "update").
		Int64("id", updated.ID).
		Str("name", updated.Name).
		Bool("checked", updated.Checked).
		Msg("checklist item updated")

	return updated, nil
}

func (s *ChecklistItemService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsById(ctx, id)

	if err != nil {
		return err
	}

	if !exists {
		s.logger.Warn().
			Str("action", "delete").
			Str("status", "not_found").
			Int64("id", id).
			Msg("checklist item delete rejected")

		return domain.NewChecklistItemNotFound(id)
	}

	if err := s.repo.DeleteById(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Str("action", "delete").
		Int64("id", id).
		Msg("checklist item deleted")

	return nil
}
