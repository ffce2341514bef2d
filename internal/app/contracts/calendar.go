package contracts

import (
	"context"

	"slotly-service/internal/app/models"
)

type CalendarService interface {
	BuildAppointmentsCalendar(ctx context.Context, doctor *models.Doctor, appointments []models.Appointment) (ics []byte, err error)
}
