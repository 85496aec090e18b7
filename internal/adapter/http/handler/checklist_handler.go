package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"checklistapp/internal/adapter/http/helper"
	"checklistapp/internal/adapter/http/validation"
	"checklistapp/internal/core/mapper"
	"checklistapp/internal/core/model/request"
	"checklistapp/internal/core/port"
)

type ChecklistItemHandler struct {
	svc    port.ChecklistItemService
	logger zerolog.Logger
}

func NewChecklistItemHandler(svc port.ChecklistItemService, logger zerolog.Logger) *ChecklistItemHandler {
	return &ChecklistItemHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *ChecklistItemHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateChecklistItemRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequestError(c, "body", "Malformed JSON request body")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	created, err := h.svc.Create(ctx, mapper.CreateRequestToDomain(params))

	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating checklist item")
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.DomainToResponse(created))
}

func (h *ChecklistItemHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.svc.FindAll(ctx)

	if err != nil {
		h.logger.Error().Err(err).Msg("Error listing checklist items")
		helper.SendInternalError(c, "Error listing checklist items")
		return
	}

	c.JSON(http.StatusOK, mapper.DomainToResponseList(items))
}

func (h *ChecklistItemHandler) GetById(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.itemID(c)

	if !ok {
		return
	}

	item, err := h.svc.FindById(ctx, id)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.DomainToResponse(item))
}

func (h *ChecklistItemHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.itemID(c)

	if !ok {
		return
	}

	var params request.UpdateChecklistItemRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequestError(c, "body", "Malformed JSON request body")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	updated, err := h.svc.Update(ctx, id, mapper.UpdateRequestToDomain(params))

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.DomainToResponse(updated))
}

func (h *ChecklistItemHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.itemID(c)

	if !ok {
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ChecklistItemHandler) itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		helper.SendBadRequestError(c, "id", "id must be an integer")
		return 0, false
	}

	return id, true
}
