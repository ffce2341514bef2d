package appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// bookingLockTTL bounds how long a crashed booking request can keep a slot
// locked.
const bookingLockTTL = 10 * time.Second

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	DoctorRepository      contracts.DoctorRepository
	LockerService         contracts.LockerService
	BookingQueueService   contracts.BookingQueueService
	CalendarService       contracts.CalendarService
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	doctorRepository contracts.DoctorRepository,
	lockerService contracts.LockerService,
	bookingQueueService contracts.BookingQueueService,
	calendarService contracts.CalendarService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			SlotRepository:        slotRepository,
			DoctorRepository:      doctorRepository,
			LockerService:         lockerService,
			BookingQueueService:   bookingQueueService,
			CalendarService:       calendarService,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, request.Date),
		zap.String(constvars.LoggingSlotTimeKey, request.Time),
	)

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.DoctorID, request.Date, request.Time)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, bookingLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingContention(errors.New("booking lock already held"))
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.BookAppointment error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	slot, err := uc.SlotRepository.FindByDoctorDateTime(ctx, request.DoctorID, request.Date, request.Time)
	if err != nil {
		return nil, err
	}
	if slot == nil || !slot.IsAvailable() {
		return nil, exceptions.ErrSlotNotAvailable(errors.New("slot missing or already booked"))
	}

	appointment := &models.Appointment{
		DoctorID:        request.DoctorID,
		SlotID:          slot.ID,
		Date:            request.Date,
		Time:            request.Time,
		DurationMinutes: slot.DurationMinutes,
		PatientName:     request.PatientName,
		PatientEmail:    request.PatientEmail,
		PatientPhone:    request.PatientPhone,
		Notes:           request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	err = uc.SlotRepository.UpdateSlotStatus(ctx, slot.ID, constvars.SlotStatusBooked)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error marking slot booked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	// The booking already exists at this point, so a queue outage must not
	// surface as a failed request.
	err = uc.BookingQueueService.PublishBookingCreated(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointmentsByCustomerID(ctx context.Context, customerID string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentsByCustomerID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(errors.New("no doctor for customer"))
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *buildAppointmentResponse(&appointments[i]))
	}

	uc.Log.Info("appointmentUsecase.GetAppointmentsByCustomerID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalAppointmentsKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) BuildAppointmentsCalendar(ctx context.Context, customerID string) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BuildAppointmentsCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(errors.New("no doctor for customer"))
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	return uc.CalendarService.BuildAppointmentsCalendar(ctx, doctor, appointments)
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:           appointment.ID,
		DoctorID:     appointment.DoctorID,
		Date:         appointment.Date,
		Time:         appointment.Time,
		PatientName:  appointment.PatientName,
		PatientEmail: appointment.PatientEmail,
		PatientPhone: appointment.PatientPhone,
		Notes:        appointment.Notes,
		CreatedAt:    appointment.CreatedAt.Format(time.RFC3339),
	}
}
