package mapper

import (
	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/model/request"
	"checklistapp/internal/core/model/response"
)

// Pure shape mapping between transport records and the domain entity.
// Validation has already happened at the transport boundary.

// CreateRequestToDomain leaves the id unset and forces checked to false;
// an item is never created in a checked state.
func CreateRequestToDomain(req request.CreateChecklistItemRequest) domain.ChecklistItem {
	return domain.ChecklistItem{
		Name:    req.Name,
		Checked: false,
	}
}

// UpdateRequestToDomain leaves the id unset; the caller supplies it from
// the route path.
func UpdateRequestToDomain(req request.UpdateChecklistItemRequest) domain.ChecklistItem {
	return domain.ChecklistItem{
		Name:    req.Name,
		Checked: req.Checked != nil && *req.Checked,
	}
}

func DomainToResponse(item domain.ChecklistItem) response.ChecklistItemResponse {
	return response.ChecklistItemResponse{
		ID:      item.ID,
		Name:    item.Name,
		Checked: item.Checked,
	}
}

func DomainToResponseList(items []domain.ChecklistItem) []response.ChecklistItemResponse {
	out := make([]response.ChecklistItemResponse, 0, len(items))

	for _, item := range items {
		out = append(out, DomainToResponse(item))
	}

	return out
}
