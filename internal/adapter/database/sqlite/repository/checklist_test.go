package repository_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "checklistapp/pkg/test"

	"checklistapp/internal/adapter/database/sqlite/repository"
	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/port"

	factory "checklistapp/pkg/test/factory"
)

type ChecklistItemRepositorySuite struct {
	suite.Suite
	Repo port.ChecklistItemRepository
}

func (s *ChecklistItemRepositorySuite) SetupTest() {
	db := InitTestDB()

	s.Repo = repository.NewChecklistItemRepository(db)
}

func TestChecklistItemRepositorySuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(ChecklistItemRepositorySuite))
}

var ctx = context.Background()

func (s *ChecklistItemRepositorySuite) TestSave_Insert_AssignsId() {
	item, err := s.Repo.Save(ctx, factory.NewChecklistItem[domain.ChecklistItem](map[string]any{
		"ID":      int64(0),
		"Name":    "Buy groceries",
		"Checked": false,
	}))

	Expect(err).To(BeNil())
	Expect(item.ID).To(BeNumerically(">", 0))
	Expect(item.Name).To(Equal("Buy groceries"))
	Expect(item.Checked).To(BeFalse())
}

func (s *ChecklistItemRepositorySuite) TestSave_Insert_SameNameGetsDistinctIds() {
	first, err := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Buy groceries"})
	Expect(err).To(BeNil())

	second, err := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Buy groceries"})
	Expect(err).To(BeNil())

	Expect(second.ID).To(Not(Equal(first.ID)))
}

func (s *ChecklistItemRepositorySuite) TestSave_Replace_UpdatesBothFields() {
	created, _ := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Buy groceries"})

	updated, err := s.Repo.Save(ctx, domain.ChecklistItem{
		ID:      created.ID,
		Name:    "Buy organic groceries",
		Checked: true,
	})

	Expect(err).To(BeNil())
	Expect(updated.ID).To(Equal(created.ID))

	found, err := s.Repo.FindById(ctx, created.ID)
	Expect(err).To(BeNil())
	Expect(found.Name).To(Equal("Buy organic groceries"))
	Expect(found.Checked).To(BeTrue())
}

func (s *ChecklistItemRepositorySuite) TestSave_Replace_MissingRowReportsNotFound() {
	_, err := s.Repo.Save(ctx, domain.ChecklistItem{ID: 999, Name: "Ghost"})

	var notFound *domain.ChecklistItemNotFoundError
	Expect(err).To(HaveOccurred())
	Expect(errors.As(err, &notFound)).To(BeTrue())
	Expect(notFound.ID).To(Equal(int64(999)))
}

func (s *ChecklistItemRepositorySuite) TestFindById_MissingRowReportsNotFound() {
	_, err := s.Repo.FindById(ctx, 999)

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(Equal("Checklist item not found with id: 999"))
}

func (s *ChecklistItemRepositorySuite) TestFindAll_EmptyStoreIsEmptySlice() {
	items, err := s.Repo.FindAll(ctx)

	Expect(err).To(BeNil())
	Expect(items).To(BeEmpty())
	Expect(items).To(Not(BeNil()))
}

func (s *ChecklistItemRepositorySuite) TestFindAll_ReturnsAllInIdOrder() {
	first, _ := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Buy groceries"})
	second, _ := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Walk the dog"})

	items, err := s.Repo.FindAll(ctx)

	Expect(err).To(BeNil())
	Expect(items).To(HaveLen(2))
	Expect(items[0].ID).To(Equal(first.ID))
	Expect(items[1].ID).To(Equal(second.ID))
}

func (s *ChecklistItemRepositorySuite) TestDeleteById_RemovesRow() {
	created, _ := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Buy groceries"})

	err := s.Repo.DeleteById(ctx, created.ID)
	Expect(err).To(BeNil())

	exists, err := s.Repo.ExistsById(ctx, created.ID)
	Expect(err).To(BeNil())
	Expect(exists).To(BeFalse())
}

func (s *ChecklistItemRepositorySuite) TestDeleteById_MissingRowReportsNotFound() {
	err := s.Repo.DeleteById(ctx, 999)

	Expect(err).To(HaveOccurred())
	Expect(err.Error()).To(ContainSubstring("not found with id: 999"))
}

func (s *ChecklistItemRepositorySuite) TestExistsById() {
	created, _ := s.Repo.Save(ctx, domain.ChecklistItem{Name: "Buy groceries"})

	exists, err := s.Repo.ExistsById(ctx, created.ID)
	Expect(err).To(BeNil())
	Expect(exists).To(BeTrue())

	exists, err = s.Repo.ExistsById(ctx, created.ID+1)
	Expect(err).To(BeNil())
	Expect(exists).To(BeFalse())
}
