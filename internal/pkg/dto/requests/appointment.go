package requests

type BookAppointment struct {
	DoctorID     string `json:"doctor_id" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	PatientName  string `json:"patient_name" validate:"required"`
	PatientEmail string `json:"patient_email" validate:"required,email"`
	PatientPhone string `json:"patient_phone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
