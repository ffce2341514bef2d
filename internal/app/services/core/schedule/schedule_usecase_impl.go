package schedule

import (
	"context"
	"errors"
	"time"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ExtractionService contracts.ScheduleExtractionService
	SlotRepository    contracts.SlotRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewScheduleUsecase(
	extractionService contracts.ScheduleExtractionService,
	slotRepository contracts.SlotRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ExtractionService: extractionService,
		SlotRepository:    slotRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *scheduleUsecase) GenerateSchedule(ctx context.Context, request *requests.GenerateSchedule) (*responses.ScheduleSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GenerateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := validateText(request.Text); err != nil {
		uc.Log.Error("scheduleUsecase.GenerateSchedule text rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	structure, err := uc.ExtractionService.ExtractSchedule(ctx, request.Text)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GenerateSchedule extraction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := validateStructure(structure); err != nil {
		uc.Log.Error("scheduleUsecase.GenerateSchedule extracted structure incomplete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	horizonDays := request.HorizonDays
	if horizonDays <= 0 {
		horizonDays = uc.InternalConfig.App.SlotHorizonDays
	}

	loc, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		loc = time.UTC
	}

	slots := generateSlots(structure, time.Now().In(loc), horizonDays, uc.InternalConfig.App.SlotBreakStrategy)
	if len(slots) == 0 {
		uc.Log.Error("scheduleUsecase.GenerateSchedule produced no slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrNoSlotsGenerated(errors.New(constvars.ErrDevScheduleNoSlots))
	}

	if request.DoctorID != "" {
		if err := uc.SlotRepository.ReplaceDoctorSlots(ctx, request.DoctorID, buildSlotDocuments(request.DoctorID, slots)); err != nil {
			uc.Log.Error("scheduleUsecase.GenerateSchedule failed to persist slots",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("scheduleUsecase.GenerateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalSlotsKey, len(slots)),
	)
	return &responses.ScheduleSlots{
		Slots:      buildSlotResponses(slots),
		TotalSlots: len(slots),
	}, nil
}

// buildSlotDocuments stamps generated slots with the owning doctor so they
// can replace the stored availability.
func buildSlotDocuments(doctorID string, slots []models.Slot) []*models.Slot {
	out := make([]*models.Slot, 0, len(slots))
	for _, s := range slots {
		doc := s
		doc.DoctorID = doctorID
		doc.SetCreatedAtUpdatedAt()
		out = append(out, &doc)
	}
	return out
}

func buildSlotResponses(slots []models.Slot) []responses.Slot {
	out := make([]responses.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, responses.Slot{
			Date:   s.Date,
			Time:   s.Time,
			Status: s.Status,
		})
	}
	return out
}
