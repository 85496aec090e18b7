package response

import "net/http"

type ChecklistItemResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Problem is the structured error body every failing response carries:
// a numeric status, a human-readable detail and, on validation failures,
// the list of violated field constraints.
type Problem struct {
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func NewProblem(status int, detail string) Problem {
	return Problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}
