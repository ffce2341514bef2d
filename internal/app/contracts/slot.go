package contracts

import (
	"context"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	GetSlotsByDoctor(ctx context.Context, doctorID, date string) ([]responses.Slot, error)
}

type SlotRepository interface {
	// ReplaceDoctorSlots atomically swaps a doctor's slot inventory for a
	// freshly generated one.
	ReplaceDoctorSlots(ctx context.Context, doctorID string, slots []*models.Slot) error
	FindByDoctor(ctx context.Context, doctorID, date string) ([]models.Slot, error)
	FindByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string) (*models.Slot, error)
	UpdateSlotStatus(ctx context.Context, slotID, status string) error
	DeleteSlotsBefore(ctx context.Context, date string) (deletedCount int64, err error)
}
