package payments

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"slotly-service/internal/app/contracts"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentGatewayService contracts.PaymentGatewayService
	DoctorRepository      contracts.DoctorRepository
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentGatewayService contracts.PaymentGatewayService,
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentGatewayService: paymentGatewayService,
			DoctorRepository:      doctorRepository,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.PaymentGatewayService.CreateCheckoutSession(ctx, request.SuccessURL, request.CancelURL)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateCheckoutSession error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreateCheckoutSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutSessionIDKey, session.SessionID),
	)
	return session, nil
}

func (uc *paymentUsecase) GetCheckoutSession(ctx context.Context, checkoutSessionID string) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.GetCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutSessionIDKey, checkoutSessionID),
	)

	return uc.PaymentGatewayService.GetCheckoutSession(ctx, checkoutSessionID)
}

func (uc *paymentUsecase) GetSubscriptionByCustomerID(ctx context.Context, customerID string) (*responses.Subscription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.GetSubscriptionByCustomerID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Trial accounts have no gateway-side customer, so their status is derived
	// from the doctor record.
	if strings.HasPrefix(customerID, constvars.TrialCustomerIDPrefix) {
		doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrDoctorNotFound(errors.New("no doctor for trial customer"))
		}

		now := time.Now()
		remaining := doctor.TrialDaysRemaining(now)
		response := &responses.Subscription{
			CustomerID:         customerID,
			TrialDaysRemaining: &remaining,
		}
		if doctor.TrialExpired(now) {
			response.Status = constvars.SubscriptionStatusExpired
		} else {
			response.Active = true
			response.Status = constvars.SubscriptionStatusTrialing
		}

		uc.Log.Info("paymentUsecase.GetSubscriptionByCustomerID resolved trial account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubscriptionStatusKey, response.Status),
		)
		return response, nil
	}

	active, err := uc.PaymentGatewayService.HasActiveSubscription(ctx, customerID)
	if err != nil {
		uc.Log.Error("paymentUsecase.GetSubscriptionByCustomerID error querying gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	status := constvars.SubscriptionStatusNone
	if active {
		status = constvars.SubscriptionStatusActive
	}

	uc.Log.Info("paymentUsecase.GetSubscriptionByCustomerID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubscriptionStatusKey, status),
	)
	return &responses.Subscription{
		CustomerID: customerID,
		Active:     active,
		Status:     status,
	}, nil
}
