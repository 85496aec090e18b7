package request

// Unknown fields in request bodies are ignored on bind, so clients can send
// forward-compatible payloads.

type CreateChecklistItemRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type UpdateChecklistItemRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Checked *bool  `json:"checked" validate:"required"`
}
