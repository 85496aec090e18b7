package domain_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"checklistapp/internal/core/domain"
)

func TestChecklistItemNotFoundError_Message(t *testing.T) {
	RegisterTestingT(t)

	err := domain.NewChecklistItemNotFound(42)

	Expect(err.Error()).To(Equal("Checklist item not found with id: 42"))
}

func TestChecklistItem_IsPersisted(t *testing.T) {
	RegisterTestingT(t)

	item := domain.ChecklistItem{Name: "Buy groceries"}
	Expect(item.IsPersisted()).To(BeFalse())

	item.ID = 1
	Expect(item.IsPersisted()).To(BeTrue())
}
