package routers

import (
	"slotly-service/internal/app/delivery/http/controllers"
	"slotly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReferralRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Post("/", doctorController.SaveReferral)
}
