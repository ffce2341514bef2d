package paymentGateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	stripeServiceInstance contracts.PaymentGatewayService
	onceStripeService     sync.Once
)

type stripeService struct {
	BaseUrl string
	ApiKey  string
	PriceID string
	Timeout time.Duration
	Log     *zap.Logger
}

type stripeCheckoutSession struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	Customer        string `json:"customer"`
	CustomerDetails *struct {
		Email string `json:"email"`
	} `json:"customer_details"`
	PaymentStatus string `json:"payment_status"`
	PaymentIntent string `json:"payment_intent"`
}

type stripeCustomer struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Deleted bool   `json:"deleted"`
}

type stripeSubscriptionList struct {
	Data []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceStripeService.Do(func() {
		instance := &stripeService{
			BaseUrl: internalConfig.Stripe.BaseUrl,
			ApiKey:  internalConfig.Stripe.ApiKey,
			PriceID: internalConfig.Stripe.PriceID,
			Timeout: time.Duration(internalConfig.Stripe.TimeoutInSeconds) * time.Second,
			Log:     logger,
		}
		stripeServiceInstance = instance
	})
	return stripeServiceInstance
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, successURL, cancelURL string) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// The session_id placeholder is substituted by Stripe on redirect.
	form := url.Values{}
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price]", s.PriceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("mode", "payment")
	form.Set("customer_creation", "always")
	form.Set("payment_intent_data[setup_future_usage]", "off_session")
	form.Set("success_url", successURL+"?session_id={CHECKOUT_SESSION_ID}")
	form.Set("cancel_url", cancelURL)
	form.Set("allow_promotion_codes", "true")

	var session stripeCheckoutSession
	err := s.doRequest(ctx, constvars.MethodPost, "/checkout/sessions", form, &session)
	if err != nil {
		return nil, err
	}

	s.Log.Info("stripeService.CreateCheckoutSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutSessionIDKey, session.ID),
	)
	return &responses.CheckoutSession{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

func (s *stripeService) GetCheckoutSession(ctx context.Context, checkoutSessionID string) (*responses.CheckoutSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.GetCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutSessionIDKey, checkoutSessionID),
	)

	var session stripeCheckoutSession
	err := s.doRequest(ctx, constvars.MethodGet, "/checkout/sessions/"+url.PathEscape(checkoutSessionID), nil, &session)
	if err != nil {
		return nil, err
	}

	response := &responses.CheckoutSession{
		SessionID:       session.ID,
		CustomerID:      session.Customer,
		PaymentStatus:   session.PaymentStatus,
		PaymentIntentID: session.PaymentIntent,
	}
	if session.CustomerDetails != nil {
		response.CustomerEmail = session.CustomerDetails.Email
	}
	return response, nil
}

func (s *stripeService) GetCustomer(ctx context.Context, customerID string) (*responses.PaymentCustomer, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.GetCustomer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var customer stripeCustomer
	err := s.doRequest(ctx, constvars.MethodGet, "/customers/"+url.PathEscape(customerID), nil, &customer)
	if err != nil {
		return nil, err
	}
	if customer.Deleted {
		return nil, exceptions.ErrPaymentCustomerNotFound(fmt.Errorf("customer %s is deleted", customerID))
	}
	return &responses.PaymentCustomer{
		ID:    customer.ID,
		Email: customer.Email,
	}, nil
}

func (s *stripeService) HasActiveSubscription(ctx context.Context, customerID string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.HasActiveSubscription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set("customer", customerID)
	query.Set("status", "active")

	var list stripeSubscriptionList
	err := s.doRequest(ctx, constvars.MethodGet, "/subscriptions?"+query.Encode(), nil, &list)
	if err != nil {
		return false, err
	}
	return len(list.Data) > 0, nil
}

func (s *stripeService) doRequest(ctx context.Context, method, path string, form url.Values, result interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseUrl+path, body)
	if err != nil {
		s.Log.Error("stripeService.doRequest error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.ApiKey)
	if form != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	}

	client := &http.Client{Timeout: s.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		s.Log.Error("stripeService.doRequest error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrPaymentCustomerNotFound(fmt.Errorf("stripe returned status %d for %s", resp.StatusCode, path))
	}
	if resp.StatusCode != constvars.StatusOK {
		requestErr := fmt.Errorf("stripe returned status %d for %s", resp.StatusCode, path)
		s.Log.Error("stripeService.doRequest unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(requestErr),
		)
		return exceptions.ErrPaymentGatewayRequest(requestErr)
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		s.Log.Error("stripeService.doRequest error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPaymentGatewayDecode(err)
	}
	return nil
}
