package validation_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"checklistapp/internal/adapter/http/validation"
	"checklistapp/internal/core/model/request"
)

func TestValidator_AcceptsValidName(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(request.CreateChecklistItemRequest{Name: "Buy groceries"})

	Expect(err).To(BeNil())
}

func TestValidator_RejectsBlankName(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(request.CreateChecklistItemRequest{Name: "   "})

	Expect(err).To(HaveOccurred())

	formatted := validation.FormatValidationErrors(err)
	Expect(formatted).To(HaveLen(1))
	Expect(formatted[0].Field).To(Equal("name"))
	Expect(formatted[0].Message).To(Equal("name must not be blank"))
}

func TestValidator_RejectsOversizedName(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(request.CreateChecklistItemRequest{Name: strings.Repeat("a", 256)})

	Expect(err).To(HaveOccurred())

	formatted := validation.FormatValidationErrors(err)
	Expect(formatted[0].Message).To(Equal("name must not exceed 255 characters"))
}

func TestValidator_UpdateRequiresChecked(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(request.UpdateChecklistItemRequest{Name: "Buy groceries"})

	Expect(err).To(HaveOccurred())

	formatted := validation.FormatValidationErrors(err)
	Expect(formatted).To(HaveLen(1))
	Expect(formatted[0].Field).To(Equal("checked"))
}
