package contracts

import (
	"context"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	GenerateSchedule(ctx context.Context, request *requests.GenerateSchedule) (*responses.ScheduleSlots, error)
}

// ScheduleExtractionService turns a doctor's free-form description of their
// working hours into a normalized schedule structure.
type ScheduleExtractionService interface {
	ExtractSchedule(ctx context.Context, text string) (*models.ScheduleStructure, error)
}
