package responses

// Doctor is the public doctor profile. The trial fields are only populated for
// accounts whose customer ID carries the trial prefix.
type Doctor struct {
	ID                 string `json:"id"`
	CustomerID         string `json:"customer_id"`
	Name               string `json:"name"`
	Specialty          string `json:"specialty,omitempty"`
	Link               string `json:"link"`
	About              string `json:"about,omitempty"`
	PhotoURL           string `json:"photo_url,omitempty"`
	Email              string `json:"email,omitempty"`
	TrialExpired       *bool  `json:"trial_expired,omitempty"`
	TrialDaysRemaining *int   `json:"trial_days_remaining,omitempty"`
}

type TrialSignup struct {
	Doctor     Doctor `json:"doctor"`
	CustomerID string `json:"customer_id"`
}
