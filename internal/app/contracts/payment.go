package contracts

import (
	"context"

	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, checkoutSessionID string) (*responses.CheckoutSession, error)
	GetSubscriptionByCustomerID(ctx context.Context, customerID string) (*responses.Subscription, error)
}

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, successURL, cancelURL string) (*responses.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, checkoutSessionID string) (*responses.CheckoutSession, error)
	GetCustomer(ctx context.Context, customerID string) (*responses.PaymentCustomer, error)
	HasActiveSubscription(ctx context.Context, customerID string) (bool, error)
}
