package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"
	"slotly-service/internal/pkg/utils"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

var (
	calendarServiceInstance contracts.CalendarService
	onceCalendarService     sync.Once
)

type calendarService struct {
	Timezone string
	Log      *zap.Logger
}

func NewCalendarService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.CalendarService {
	onceCalendarService.Do(func() {
		calendarServiceInstance = &calendarService{
			Timezone: internalConfig.App.Timezone,
			Log:      logger,
		}
	})
	return calendarServiceInstance
}

func (s *calendarService) BuildAppointmentsCalendar(ctx context.Context, doctor *models.Doctor, appointments []models.Appointment) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("calendarService.BuildAppointmentsCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalAppointmentsKey, len(appointments)),
	)

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		loc = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Slotly//Appointments//EN")
	cal.SetName(fmt.Sprintf("%s appointments", doctor.Name))

	for _, appointment := range appointments {
		startAt, err := utils.ParseDateTime(appointment.Date, appointment.Time, loc)
		if err != nil {
			s.Log.Warn("calendarService.BuildAppointmentsCalendar skipping appointment with unparsable time",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
			continue
		}
		duration := appointment.DurationMinutes
		if duration <= 0 {
			duration = constvars.DefaultSlotDurationMinutes
		}

		event := cal.AddEvent(fmt.Sprintf("%s@slotly", appointment.ID))
		event.SetCreatedTime(appointment.CreatedAt)
		event.SetDtStampTime(appointment.CreatedAt)
		event.SetStartAt(startAt)
		event.SetEndAt(startAt.Add(time.Duration(duration) * time.Minute))
		event.SetSummary(fmt.Sprintf("Appointment: %s", appointment.PatientName))
		if appointment.Notes != "" {
			event.SetDescription(appointment.Notes)
		}
		if doctor.Name != "" {
			event.SetOrganizer(doctor.Email, ics.WithCN(doctor.Name))
		}
	}

	serialized := cal.Serialize()
	if serialized == "" {
		return nil, exceptions.ErrCalendarSerialize(fmt.Errorf("empty calendar output"))
	}
	return []byte(serialized), nil
}
