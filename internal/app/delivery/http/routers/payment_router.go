package routers

import (
	"slotly-service/internal/app/delivery/http/controllers"
	"slotly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Post("/checkout-session", paymentController.CreateCheckoutSession)
	router.Get("/checkout-session/{checkout_session_id}", paymentController.GetCheckoutSession)
	router.Get("/subscription/{customer_id}", paymentController.GetSubscription)
}
