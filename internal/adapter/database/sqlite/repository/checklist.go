package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"checklistapp/internal/adapter/database/sqlite"
	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/port"
)

// checklistItemRecord is the stored representation, kept separate from the
// domain entity so the persistence encoding can change without touching it.
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
	db *sqlite.DB
}

func NewChecklistItemRepository(db *sqlite.DB) port.ChecklistItemRepository {
	return &ChecklistItemRepository{db: db}
}

// Save inserts when the item carries no id and otherwise replaces the row
// with that id. The replace is a single conditional statement: zero affected
// rows means the row vanished and the caller gets not-found, never a silent
// success.
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
		ToSql()

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	record.ID = id

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

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return domain.ChecklistItem{}, err
	}

	if rowsAffected == 0 {
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

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.Name, &record.Checked)

	if errors.Is(err, sql.ErrNoRows) {
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

	rows, err := r.db.QueryContext(ctx, query, args...)

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

// DeleteById is conditional on the row still existing, like replace.
func (r *ChecklistItemRepository) DeleteById(ctx context.Context, id int64) error {
	query, args, err := r.db.QueryBuilder.Delete("checklist_items").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
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

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
