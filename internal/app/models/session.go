package models

type Session struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	CustomerID string `json:"customer_id"`
	DoctorID   string `json:"doctor_id,omitempty"`
}
