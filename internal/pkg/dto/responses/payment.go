package responses

type CheckoutSession struct {
	SessionID       string `json:"session_id"`
	CheckoutURL     string `json:"checkout_url,omitempty"`
	CustomerID      string `json:"customer_id,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	PaymentStatus   string `json:"payment_status,omitempty"`
	PaymentIntentID string `json:"payment_intent,omitempty"`
}

type PaymentCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Subscription struct {
	CustomerID         string `json:"customer_id"`
	Active             bool   `json:"active"`
	Status             string `json:"status"`
	TrialDaysRemaining *int   `json:"trial_days_remaining,omitempty"`
}
