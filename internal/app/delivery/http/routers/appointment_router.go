package routers

import (
	"slotly-service/internal/app/delivery/http/controllers"
	"slotly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.BookAppointment)
	router.Get("/", appointmentController.GetAppointments)
	router.Get("/calendar", appointmentController.GetAppointmentsCalendar)
}
