package port

import (
	"context"

	"checklistapp/internal/core/domain"
)

// ChecklistItemRepository is the narrow persistence port. Save inserts when
// the item has no id and performs an identity-preserving replace when it
// does; Save and Delete report not-found through a
// domain.ChecklistItemNotFoundError so a concurrent removal between an
// existence check and the mutation never turns into a silent success.
type ChecklistItemRepository interface {
	Save(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)
	FindById(ctx context.Context, id int64) (domain.ChecklistItem, error)
	FindAll(ctx context.Context) ([]domain.ChecklistItem, error)
	DeleteById(ctx context.Context, id int64) error
	ExistsById(ctx context.Context, id int64) (bool, error)
}

type ChecklistItemService interface {
	Create(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)
	FindAll(ctx context.Context) ([]domain.ChecklistItem, error)
	FindById(ctx context.Context, id int64) (domain.ChecklistItem, error)
	Update(ctx context.Context, id int64, item domain.ChecklistItem) (domain.ChecklistItem, error)
	Delete(ctx context.Context, id int64) error
}
