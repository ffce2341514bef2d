package contracts

import (
	"context"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
	GetAppointmentsByCustomerID(ctx context.Context, customerID string) ([]responses.Appointment, error)
	BuildAppointmentsCalendar(ctx context.Context, customerID string) (ics []byte, err error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
}
