package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"checklistapp/internal/adapter/http/validation"
	"checklistapp/internal/core/domain"
	"checklistapp/internal/core/model/response"
)

// Single place where raised conditions turn into status codes and problem
// bodies, so the 400/404 contract stays identical across all handlers.

func SendProblem(c *gin.Context, status int, detail string, fieldErrors ...response.ValidationError) {
	problem := response.NewProblem(status, detail)
	problem.Errors = fieldErrors

	c.JSON(status, problem)
}

func SendValidationError(c *gin.Context, err error) {
	SendProblem(c, http.StatusBadRequest, "Invalid request body", validation.FormatValidationErrors(err)...)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	SendProblem(c, http.StatusBadRequest, "Invalid request body", response.ValidationError{
		Field:   field,
		Message: message,
	})
}

func SendNotFoundError(c *gin.Context, detail string) {
	SendProblem(c, http.StatusNotFound, detail)
}

func SendInternalError(c *gin.Context, detail string) {
	SendProblem(c, http.StatusInternalServerError, detail)
}

// SendDomainError routes a use case failure to the right response: the typed
// not-found error becomes a 404, anything else a generic 500.
func SendDomainError(c *gin.Context, err error) {
	var notFound *domain.ChecklistItemNotFoundError

	if errors.As(err, &notFound) {
		SendNotFoundError(c, notFound.Error())
		return
	}

	SendInternalError(c, "Unexpected server error")
}
