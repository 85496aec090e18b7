package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"checklistapp/internal/adapter/database/postgres"
	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/port"
)

type checklistItemRecord struct {
	ID      int64
	Name    string
	Checked bool
}

func toRecord(item domain.ChecklistItem) checklistItemRecord {
	return checklistItemRecord{
		ID:      item.ID,
		Name:    item.Name,
		Checked: item.Checked,
	}
}

func toDomain(record checklistItemRecord) domain.ChecklistItem {
	return domain.ChecklistItem{
		ID:      record.ID,
		Name:    record.Name,
		Checked: record.Checked,
	}
}

type ChecklistItemRepository struct {
	db *postgres.DB
}

func NewChecklistItemRepository(db *postgres.DB) port.ChecklistItemRepository {
	return &ChecklistItemRepository{db: db}
}

func (r *ChecklistItemRepository) Save(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	record := toRecord(item)

	if record.ID == 0 {
		return r.insert(ctx, record)
	}

	return r.replace(ctx, record)
}

func (r *ChecklistItemRepository) insert(ctx context.Context, record checklistItemRecord) (domain.ChecklistItem, error) {
	query, args, err := r.db.QueryBuilder.Insert("checklist_items").
		Columns("name", "checked").
		Values(record.Name, record.Checked).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&record.ID)

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	return toDomain(record), nil
}

func (r *ChecklistItemRepository) replace(ctx context.Context, record checklistItemRecord) (domain.ChecklistItem, error) {
	query, args, err := r.db.QueryBuilder.Update("checklist_items").
		Set("name", record.Name).
		Set("checked", record.Checked).
		Where(sq.Eq{"id": record.ID}).
		ToSql()

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	tag, err := r.db.Exec(ctx, query, args...)

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	if tag.RowsAffected() == 0 {
		return domain.ChecklistItem{}, domain.NewChecklistItemNotFound(record.ID)
	}

	return toDomain(record), nil
}

func (r *ChecklistItemRepository) FindById(ctx context.Context, id int64) (domain.ChecklistItem, error) {
	query, args, err := r.db.QueryBuilder.Select("id", "name", "checked").
		From("checklist_items").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	var record checklistItemRecord

	err = r.db.QueryRow(ctx, query, args...).Scan(&record.ID, &record.Name, &record.Checked)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ChecklistItem{}, domain.NewChecklistItemNotFound(id)
	}

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	return toDomain(record), nil
}

func (r *ChecklistItemRepository) FindAll(ctx context.Context) ([]domain.ChecklistItem, error) {
	query, args, err := r.db.QueryBuilder.Select("id", "name", "checked").
		From("checklist_items").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := make([]domain.ChecklistItem, 0)

	for rows.Next() {
		var record checklistItemRecord

		if err := rows.Scan(&record.ID, &record.Name, &record.Checked); err != nil {
			return nil, err
		}

		items = append(items, toDomain(record))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ChecklistItemRepository) DeleteById(ctx context.Context, id int64) error {
	query, args, err := r.db.QueryBuilder.Delete("checklist_items").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewChecklistItemNotFound(id)
	}

	return nil
}

func (r *ChecklistItemRepository) ExistsById(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.db.QueryBuilder.Select("1").
		From("checklist_items").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, err
	}

	var one int

	err = r.db.QueryRow(ctx, query, args...).Scan(&one)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
