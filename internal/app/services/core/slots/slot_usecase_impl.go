package slots

import (
	"context"
	"sync"

	"slotly-service/internal/app/contracts"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository contracts.SlotRepository
	Log            *zap.Logger
}

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

func NewSlotUsecase(slotRepository contracts.SlotRepository, logger *zap.Logger) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotRepository: slotRepository,
			Log:            logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) GetSlotsByDoctor(ctx context.Context, doctorID, date string) ([]responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("slotUsecase.GetSlotsByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	slots, err := uc.SlotRepository.FindByDoctor(ctx, doctorID, date)
	if err != nil {
		uc.Log.Error("slotUsecase.GetSlotsByDoctor error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	available := make([]responses.Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsAvailable() {
			continue
		}
		available = append(available, responses.Slot{
			Date:   slot.Date,
			Time:   slot.Time,
			Status: slot.Status,
		})
	}

	uc.Log.Info("slotUsecase.GetSlotsByDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalSlotsKey, len(available)),
	)
	return available, nil
}
