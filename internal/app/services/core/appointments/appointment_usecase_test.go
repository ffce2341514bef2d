package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	args := m.Called(ctx, appointmentModel)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
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

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	args := m.Called(ctx, doctorModel)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByCustomerID(ctx context.Context, customerID string) (*models.Doctor, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByLink(ctx context.Context, link string) (*models.Doctor, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	args := m.Called(ctx, doctorModel)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockBookingQueueService struct {
	mock.Mock
}

func (m *MockBookingQueueService) PublishBookingCreated(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) BuildAppointmentsCalendar(ctx context.Context, doctor *models.Doctor, appointments []models.Appointment) ([]byte, error) {
	args := m.Called(ctx, doctor, appointments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type appointmentTestMocks struct {
	appointmentRepo *MockAppointmentRepository
	slotRepo        *MockSlotRepository
	doctorRepo      *MockDoctorRepository
	locker          *MockLockerService
	queue           *MockBookingQueueService
	calendar        *MockCalendarService
}

// newTestAppointmentUsecase builds the usecase directly so each subtest gets
// fresh mocks instead of the singleton from NewAppointmentUsecase.
func newTestAppointmentUsecase() (*appointmentUsecase, *appointmentTestMocks) {
	mocks := &appointmentTestMocks{
		appointmentRepo: new(MockAppointmentRepository),
		slotRepo:        new(MockSlotRepository),
		doctorRepo:      new(MockDoctorRepository),
		locker:          new(MockLockerService),
		queue:           new(MockBookingQueueService),
		calendar:        new(MockCalendarService),
	}
	uc := &appointmentUsecase{
		AppointmentRepository: mocks.appointmentRepo,
		SlotRepository:        mocks.slotRepo,
		DoctorRepository:      mocks.doctorRepo,
		LockerService:         mocks.locker,
		BookingQueueService:   mocks.queue,
		CalendarService:       mocks.calendar,
		Log:                   zap.NewNop(),
	}
	return uc, mocks
}

func bookingRequest() *requests.BookAppointment {
	return &requests.BookAppointment{
		DoctorID:     "doctor-1",
		Date:         "2026-09-01",
		Time:         "09:00",
		PatientName:  "Alice Patient",
		PatientEmail: "alice@example.com",
	}
}

func TestBookAppointment(t *testing.T) {
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, "doctor-1", "2026-09-01", "09:00")

	t.Run("Rejects Concurrent Booking Of Same Slot", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.locker.On("TryLock", mock.Anything, lockKey, bookingLockTTL).Return(false, "", nil)

		response, err := uc.BookAppointment(context.Background(), bookingRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mocks.slotRepo.AssertNotCalled(t, "FindByDoctorDateTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mocks.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Already Booked Slot And Releases Lock", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.locker.On("TryLock", mock.Anything, lockKey, bookingLockTTL).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.slotRepo.On("FindByDoctorDateTime", mock.Anything, "doctor-1", "2026-09-01", "09:00").
			Return(&models.Slot{ID: "slot-1", Status: constvars.SlotStatusBooked}, nil)

		response, err := uc.BookAppointment(context.Background(), bookingRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mocks.appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
		mocks.locker.AssertExpectations(t)
	})

	t.Run("Rejects Unknown Slot", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.locker.On("TryLock", mock.Anything, lockKey, bookingLockTTL).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.slotRepo.On("FindByDoctorDateTime", mock.Anything, "doctor-1", "2026-09-01", "09:00").Return(nil, nil)

		response, err := uc.BookAppointment(context.Background(), bookingRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Books Available Slot And Publishes Event", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.locker.On("TryLock", mock.Anything, lockKey, bookingLockTTL).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.slotRepo.On("FindByDoctorDateTime", mock.Anything, "doctor-1", "2026-09-01", "09:00").
			Return(&models.Slot{ID: "slot-1", DoctorID: "doctor-1", Status: constvars.SlotStatusAvailable, DurationMinutes: 30}, nil)
		mocks.appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("appointment-1", nil)
		mocks.slotRepo.On("UpdateSlotStatus", mock.Anything, "slot-1", constvars.SlotStatusBooked).Return(nil)

		var published *models.Appointment
		mocks.queue.On("PublishBookingCreated", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Run(func(args mock.Arguments) {
				published = args.Get(1).(*models.Appointment)
			}).
			Return(nil)

		response, err := uc.BookAppointment(context.Background(), bookingRequest())

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", response.ID)
		assert.Equal(t, "doctor-1", response.DoctorID)
		assert.Equal(t, "2026-09-01", response.Date)
		assert.Equal(t, "09:00", response.Time)
		mocks.locker.AssertExpectations(t)
		mocks.slotRepo.AssertExpectations(t)
		mocks.queue.AssertExpectations(t)
		assert.Equal(t, "appointment-1", published.ID)
		assert.Equal(t, 30, published.DurationMinutes)
	})

	t.Run("Queue Outage Does Not Fail Booking", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.locker.On("TryLock", mock.Anything, lockKey, bookingLockTTL).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.slotRepo.On("FindByDoctorDateTime", mock.Anything, "doctor-1", "2026-09-01", "09:00").
			Return(&models.Slot{ID: "slot-1", DoctorID: "doctor-1", Status: constvars.SlotStatusAvailable, DurationMinutes: 30}, nil)
		mocks.appointmentRepo.On("CreateAppointment", mock.Anything, mock.Anything).Return("appointment-1", nil)
		mocks.slotRepo.On("UpdateSlotStatus", mock.Anything, "slot-1", constvars.SlotStatusBooked).Return(nil)
		mocks.queue.On("PublishBookingCreated", mock.Anything, mock.Anything).
			Return(errors.New("channel closed"))

		response, err := uc.BookAppointment(context.Background(), bookingRequest())

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", response.ID)
	})

	t.Run("Slot Update Failure Bubbles Up", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.locker.On("TryLock", mock.Anything, lockKey, bookingLockTTL).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		mocks.slotRepo.On("FindByDoctorDateTime", mock.Anything, "doctor-1", "2026-09-01", "09:00").
			Return(&models.Slot{ID: "slot-1", DoctorID: "doctor-1", Status: constvars.SlotStatusAvailable, DurationMinutes: 30}, nil)
		mocks.appointmentRepo.On("CreateAppointment", mock.Anything, mock.Anything).Return("appointment-1", nil)
		mocks.slotRepo.On("UpdateSlotStatus", mock.Anything, "slot-1", constvars.SlotStatusBooked).
			Return(exceptions.ErrMongoDBUpdateDocument(errors.New("write failed")))

		response, err := uc.BookAppointment(context.Background(), bookingRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		mocks.queue.AssertNotCalled(t, "PublishBookingCreated", mock.Anything, mock.Anything)
	})
}

func TestGetAppointmentsByCustomerID(t *testing.T) {
	t.Run("Returns Not Found For Unknown Customer", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByCustomerID", mock.Anything, "cus_unknown").Return(nil, nil)

		response, err := uc.GetAppointmentsByCustomerID(context.Background(), "cus_unknown")

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mocks.appointmentRepo.AssertNotCalled(t, "FindByDoctorID", mock.Anything, mock.Anything)
	})

	t.Run("Maps Appointments For Doctor", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByCustomerID", mock.Anything, "cus_123").
			Return(&models.Doctor{ID: "doctor-1", CustomerID: "cus_123"}, nil)
		mocks.appointmentRepo.On("FindByDoctorID", mock.Anything, "doctor-1").
			Return([]models.Appointment{
				{ID: "appointment-1", DoctorID: "doctor-1", Date: "2026-09-01", Time: "09:00", PatientName: "Alice Patient"},
				{ID: "appointment-2", DoctorID: "doctor-1", Date: "2026-09-01", Time: "09:30", PatientName: "Bob Patient"},
			}, nil)

		response, err := uc.GetAppointmentsByCustomerID(context.Background(), "cus_123")

		assert.NoError(t, err)
		assert.Len(t, response, 2)
		assert.Equal(t, "appointment-1", response[0].ID)
		assert.Equal(t, "Bob Patient", response[1].PatientName)
	})

	t.Run("Empty List When Doctor Has No Appointments", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByCustomerID", mock.Anything, "cus_123").
			Return(&models.Doctor{ID: "doctor-1", CustomerID: "cus_123"}, nil)
		mocks.appointmentRepo.On("FindByDoctorID", mock.Anything, "doctor-1").
			Return([]models.Appointment{}, nil)

		response, err := uc.GetAppointmentsByCustomerID(context.Background(), "cus_123")

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Len(t, response, 0)
	})
}

func TestBuildAppointmentsCalendar(t *testing.T) {
	t.Run("Delegates To Calendar Service", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		doctor := &models.Doctor{ID: "doctor-1", CustomerID: "cus_123", Name: "Dr Jones"}
		appointments := []models.Appointment{
			{ID: "appointment-1", DoctorID: "doctor-1", Date: "2026-09-01", Time: "09:00"},
		}
		mocks.doctorRepo.On("FindByCustomerID", mock.Anything, "cus_123").Return(doctor, nil)
		mocks.appointmentRepo.On("FindByDoctorID", mock.Anything, "doctor-1").Return(appointments, nil)
		mocks.calendar.On("BuildAppointmentsCalendar", mock.Anything, doctor, appointments).
			Return([]byte("BEGIN:VCALENDAR"), nil)

		ics, err := uc.BuildAppointmentsCalendar(context.Background(), "cus_123")

		assert.NoError(t, err)
		assert.Contains(t, string(ics), "BEGIN:VCALENDAR")
		mocks.calendar.AssertExpectations(t)
	})

	t.Run("Returns Not Found For Unknown Customer", func(t *testing.T) {
		uc, mocks := newTestAppointmentUsecase()

		mocks.doctorRepo.On("FindByCustomerID", mock.Anything, "cus_unknown").Return(nil, nil)

		ics, err := uc.BuildAppointmentsCalendar(context.Background(), "cus_unknown")

		assert.Nil(t, ics)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mocks.calendar.AssertNotCalled(t, "BuildAppointmentsCalendar", mock.Anything, mock.Anything, mock.Anything)
	})
}
