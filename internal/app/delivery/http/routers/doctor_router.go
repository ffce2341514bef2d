package routers

import (
	"slotly-service/internal/app/delivery/http/controllers"
	"slotly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Post("/", doctorController.SaveDoctor)
	router.Get("/", doctorController.GetDoctorByLink)
	router.Get("/by-customer", doctorController.GetDoctorByCustomerID)
	router.Post("/trial", doctorController.TrialSignup)
	router.With(middlewares.Authenticate).Post("/{doctor_id}/photo", doctorController.UploadDoctorPhoto)
}
