package mapper_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/mapper"
	"checklistapp/internal/core/model/request"
)

func TestCreateRequestToDomain(t *testing.T) {
	RegisterTestingT(t)

	item := mapper.CreateRequestToDomain(request.CreateChecklistItemRequest{Name: "Buy groceries"})

	Expect(item.ID).To(Equal(int64(0)))
	Expect(item.Name).To(Equal("Buy groceries"))
	Expect(item.Checked).To(BeFalse())
}

func TestUpdateRequestToDomain(t *testing.T) {
	RegisterTestingT(t)

	checked := true
	item := mapper.UpdateRequestToDomain(request.UpdateChecklistItemRequest{
		Name:    "Walk the dog",
		Checked: &checked,
	})

	Expect(item.ID).To(Equal(int64(0)))
	Expect(item.Name).To(Equal("Walk the dog"))
	Expect(item.Checked).To(BeTrue())
}

func TestDomainToResponse(t *testing.T) {
	RegisterTestingT(t)

	resp := mapper.DomainToResponse(domain.ChecklistItem{ID: 7, Name: "Buy groceries", Checked: true})

	Expect(resp.ID).To(Equal(int64(7)))
	Expect(resp.Name).To(Equal("Buy groceries"))
	Expect(resp.Checked).To(BeTrue())
}

func TestDomainToResponseList_EmptyIsNotNil(t *testing.T) {
	RegisterTestingT(t)

	out := mapper.DomainToResponseList(nil)

	Expect(out).To(Not(BeNil()))
	Expect(out).To(BeEmpty())
}
