package http

import (
	"os"

	"github.com/rs/zerolog"

	"checklistapp/internal/adapter/http/handler"
	"checklistapp/internal/core/port"
	"checklistapp/internal/core/service"
)

type Container struct {
	ChecklistItemRepo    port.ChecklistItemRepository
	ChecklistItemUseCase port.ChecklistItemService
	ChecklistItemHandler *handler.ChecklistItemHandler
}

func NewContainer(checklistRepo port.ChecklistItemRepository) *Container {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	checklistSvc := service.NewChecklistItemService(checklistRepo, logger)
	checklistHandler := handler.NewChecklistItemHandler(checklistSvc, logger)

	return &Container{
		ChecklistItemRepo:    checklistRepo,
		ChecklistItemUseCase: checklistSvc,
		ChecklistItemHandler: checklistHandler,
	}
}
