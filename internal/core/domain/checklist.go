package domain

import "fmt"

// ChecklistItem is the business representation of a checklist entry,
// independent of its transport or storage encoding. ID is zero until the
// storage engine assigns one and immutable afterwards.
type ChecklistItem struct {
	ID      int64
	Name    string `validate:"required,notblank,max=255"`
	Checked bool
}

// IsPersisted reports whether the item has been assigned an identity.
func (i *ChecklistItem) IsPersisted() bool {
	return i.ID != 0
}

// ChecklistItemNotFoundError is returned by mutating use cases when the
// target id does not exist. The transport layer translates it into a 404
// problem response; no other layer recovers from it.
type ChecklistItemNotFoundError struct {
	ID int64
}

func NewChecklistItemNotFound(id int64) *ChecklistItemNotFoundError {
	return &ChecklistItemNotFoundError{ID: id}
}

func (e *ChecklistItemNotFoundError) Error() string {
	return fmt.Sprintf("Checklist item not found with id: %d", e.ID)
}
