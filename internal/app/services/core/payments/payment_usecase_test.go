package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPaymentGatewayService struct {
	mock.Mock
}

func (m *MockPaymentGatewayService) CreateCheckoutSession(ctx context.Context, successURL, cancelURL string) (*responses.CheckoutSession, error) {
	args := m.Called(ctx, successURL, cancelURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGatewayService) GetCheckoutSession(ctx context.Context, checkoutSessionID string) (*responses.CheckoutSession, error) {
	args := m.Called(ctx, checkoutSessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGatewayService) GetCustomer(ctx context.Context, customerID string) (*responses.PaymentCustomer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentCustomer), args.Error(1)
}

func (m *MockPaymentGatewayService) HasActiveSubscription(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	args := m.Called(ctx, doctorModel)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByCustomerID(ctx context.Context, customerID string) (*models.Doctor, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByLink(ctx context.Context, link string) (*models.Doctor, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	args := m.Called(ctx, doctorModel)
	return args.Error(0)
}

// newTestPaymentUsecase builds the usecase directly so each subtest gets fresh
// mocks instead of the singleton from NewPaymentUsecase.
func newTestPaymentUsecase(gateway *MockPaymentGatewayService, doctorRepo *MockDoctorRepository) *paymentUsecase {
	return &paymentUsecase{
		PaymentGatewayService: gateway,
		DoctorRepository:      doctorRepo,
		Log:                   zap.NewNop(),
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("Returns Session From Gateway", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		uc := newTestPaymentUsecase(gateway, new(MockDoctorRepository))

		gateway.On("CreateCheckoutSession", mock.Anything, "https://app.example.com/success", "https://app.example.com/cancel").
			Return(&responses.CheckoutSession{
				SessionID:   "cs_test_123",
				CheckoutURL: "https://checkout.stripe.com/pay/cs_test_123",
			}, nil)

		response, err := uc.CreateCheckoutSession(context.Background(), &requests.CreateCheckoutSession{
			SuccessURL: "https://app.example.com/success",
			CancelURL:  "https://app.example.com/cancel",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_123", response.SessionID)
		assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", response.CheckoutURL)
	})

	t.Run("Surfaces Gateway Failure", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		uc := newTestPaymentUsecase(gateway, new(MockDoctorRepository))

		gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrPaymentGatewayRequest(errors.New("stripe unreachable")))

		response, err := uc.CreateCheckoutSession(context.Background(), &requests.CreateCheckoutSession{
			SuccessURL: "https://app.example.com/success",
			CancelURL:  "https://app.example.com/cancel",
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}

func TestGetSubscriptionByCustomerID(t *testing.T) {
	t.Run("Trial Customer Resolves Locally While Active", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		doctorRepo := new(MockDoctorRepository)
		uc := newTestPaymentUsecase(gateway, doctorRepo)

		customerID := constvars.TrialCustomerIDPrefix + "abc123"
		trialDoctor := &models.Doctor{ID: "doctor-1", CustomerID: customerID}
		trialDoctor.CreatedAt = time.Now().Add(-48 * time.Hour)
		doctorRepo.On("FindByCustomerID", mock.Anything, customerID).Return(trialDoctor, nil)

		response, err := uc.GetSubscriptionByCustomerID(context.Background(), customerID)

		assert.NoError(t, err)
		assert.True(t, response.Active)
		assert.Equal(t, constvars.SubscriptionStatusTrialing, response.Status)
		assert.NotNil(t, response.TrialDaysRemaining)
		assert.Equal(t, constvars.TrialPeriodDays-2, *response.TrialDaysRemaining)
		gateway.AssertNotCalled(t, "HasActiveSubscription", mock.Anything, mock.Anything)
	})

	t.Run("Expired Trial Reports Expired Status", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		doctorRepo := new(MockDoctorRepository)
		uc := newTestPaymentUsecase(gateway, doctorRepo)

		customerID := constvars.TrialCustomerIDPrefix + "abc123"
		trialDoctor := &models.Doctor{ID: "doctor-1", CustomerID: customerID}
		trialDoctor.CreatedAt = time.Now().Add(-time.Duration(constvars.TrialPeriodDays+1) * 24 * time.Hour)
		doctorRepo.On("FindByCustomerID", mock.Anything, customerID).Return(trialDoctor, nil)

		response, err := uc.GetSubscriptionByCustomerID(context.Background(), customerID)

		assert.NoError(t, err)
		assert.False(t, response.Active)
		assert.Equal(t, constvars.SubscriptionStatusExpired, response.Status)
		assert.Equal(t, 0, *response.TrialDaysRemaining)
	})

	t.Run("Unknown Trial Customer Returns Not Found", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		doctorRepo := new(MockDoctorRepository)
		uc := newTestPaymentUsecase(gateway, doctorRepo)

		customerID := constvars.TrialCustomerIDPrefix + "missing"
		doctorRepo.On("FindByCustomerID", mock.Anything, customerID).Return(nil, nil)

		response, err := uc.GetSubscriptionByCustomerID(context.Background(), customerID)

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Paid Customer Resolves Through Gateway", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		doctorRepo := new(MockDoctorRepository)
		uc := newTestPaymentUsecase(gateway, doctorRepo)

		gateway.On("HasActiveSubscription", mock.Anything, "cus_123").Return(true, nil)

		response, err := uc.GetSubscriptionByCustomerID(context.Background(), "cus_123")

		assert.NoError(t, err)
		assert.True(t, response.Active)
		assert.Equal(t, constvars.SubscriptionStatusActive, response.Status)
		assert.Nil(t, response.TrialDaysRemaining)
		doctorRepo.AssertNotCalled(t, "FindByCustomerID", mock.Anything, mock.Anything)
	})

	t.Run("Customer Without Subscription Reports None", func(t *testing.T) {
		gateway := new(MockPaymentGatewayService)
		doctorRepo := new(MockDoctorRepository)
		uc := newTestPaymentUsecase(gateway, doctorRepo)

		gateway.On("HasActiveSubscription", mock.Anything, "cus_123").Return(false, nil)

		response, err := uc.GetSubscriptionByCustomerID(context.Background(), "cus_123")

		assert.NoError(t, err)
		assert.False(t, response.Active)
		assert.Equal(t, constvars.SubscriptionStatusNone, response.Status)
	})
}
