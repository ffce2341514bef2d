package schedule

import (
	"context"
	"errors"
	"testing"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScheduleExtractionService struct {
	mock.Mock
}

func (m *MockScheduleExtractionService) ExtractSchedule(ctx context.Context, text string) (*models.ScheduleStructure, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduleStructure), args.Error(1)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) ReplaceDoctorSlots(ctx context.Context, doctorID string, slots []*models.Slot) error {
	args := m.Called(ctx, doctorID, slots)
	return args.Error(0)
}

func (m *MockSlotRepository) FindByDoctor(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Slot), args.Error(1)
}

func (m *MockSlotRepository) FindByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string) (*models.Slot, error) {
	args := m.Called(ctx, doctorID, date, timeOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Slot), args.Error(1)
}

func (m *MockSlotRepository) UpdateSlotStatus(ctx context.Context, slotID, status string) error {
	args := m.Called(ctx, slotID, status)
	return args.Error(0)
}

func (m *MockSlotRepository) DeleteSlotsBefore(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			Timezone:          "UTC",
			SlotHorizonDays:   30,
			SlotBreakStrategy: constvars.SlotBreakStrategyJump,
		},
	}
}

func TestGenerateSchedule(t *testing.T) {
	t.Run("Rejects Short Text Before Extraction", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{Text: "mon 9-5"})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		extraction.AssertNotCalled(t, "ExtractSchedule", mock.Anything, mock.Anything)
	})

	t.Run("Surfaces Extraction Failure", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		extraction.On("ExtractSchedule", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrExtractionUpstream(errors.New("connection refused")))

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{
			Text: "Monday to Friday from 9am to 5pm, 30 minute sessions",
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Rejects Incomplete Structure", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		extraction.On("ExtractSchedule", mock.Anything, mock.Anything).
			Return(&models.ScheduleStructure{Default: &models.ScheduleRule{Days: []string{"monday"}}}, nil)

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{
			Text: "Monday to Friday from 9am to 5pm, 30 minute sessions",
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("Returns Not Found When Nothing Generates", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		extraction.On("ExtractSchedule", mock.Anything, mock.Anything).
			Return(&models.ScheduleStructure{
				Default: &models.ScheduleRule{
					Days:                []string{"someday"},
					StartTime:           "09:00",
					EndTime:             "17:00",
					SlotDurationMinutes: 30,
				},
			}, nil)

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{
			Text: "Monday to Friday from 9am to 5pm, 30 minute sessions",
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Generates Without Persisting When No Doctor", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		extraction.On("ExtractSchedule", mock.Anything, mock.Anything).Return(everyDaySchedule(), nil)

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{
			Text:        "Every day from 9am to 5pm, 30 minute sessions",
			HorizonDays: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 32, response.TotalSlots, "two days of sixteen slots regardless of weekday")
		assert.Len(t, response.Slots, 32)
		assert.Equal(t, constvars.SlotStatusAvailable, response.Slots[0].Status)
		slotRepo.AssertNotCalled(t, "ReplaceDoctorSlots", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Persists Availability For Doctor", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		extraction.On("ExtractSchedule", mock.Anything, mock.Anything).Return(everyDaySchedule(), nil)

		var persisted []*models.Slot
		slotRepo.On("ReplaceDoctorSlots", mock.Anything, "doctor-1", mock.AnythingOfType("[]*models.Slot")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(2).([]*models.Slot)
			}).
			Return(nil)

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{
			Text:        "Every day from 9am to 5pm, 30 minute sessions",
			DoctorID:    "doctor-1",
			HorizonDays: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 32, response.TotalSlots)
		slotRepo.AssertExpectations(t)
		assert.Len(t, persisted, 32)
		for _, s := range persisted {
			assert.Equal(t, "doctor-1", s.DoctorID)
			assert.Equal(t, constvars.SlotStatusAvailable, s.Status)
			assert.False(t, s.CreatedAt.IsZero())
		}
	})

	t.Run("Persistence Failure Bubbles Up", func(t *testing.T) {
		extraction := new(MockScheduleExtractionService)
		slotRepo := new(MockSlotRepository)
		uc := NewScheduleUsecase(extraction, slotRepo, testInternalConfig(), zap.NewNop())

		extraction.On("ExtractSchedule", mock.Anything, mock.Anything).Return(everyDaySchedule(), nil)
		slotRepo.On("ReplaceDoctorSlots", mock.Anything, "doctor-1", mock.Anything).
			Return(exceptions.ErrMongoDBInsertDocument(errors.New("write failed")))

		response, err := uc.GenerateSchedule(context.Background(), &requests.GenerateSchedule{
			Text:        "Every day from 9am to 5pm, 30 minute sessions",
			DoctorID:    "doctor-1",
			HorizonDays: 2,
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

// everyDaySchedule enables all seven weekdays so slot counts do not depend on
// the day the test runs.
func everyDaySchedule() *models.ScheduleStructure {
	return &models.ScheduleStructure{
		Default: &models.ScheduleRule{
			Days:                []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			StartTime:           "09:00",
			EndTime:             "17:00",
			SlotDurationMinutes: 30,
		},
	}
}
