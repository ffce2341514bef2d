package requests

// GenerateSchedule carries the doctor's free-form description of their working
// hours. DoctorID is optional; when present the generated slots replace the
// doctor's stored availability.
type GenerateSchedule struct {
	Text        string `json:"text" validate:"required"`
	DoctorID    string `json:"doctor_id,omitempty"`
	HorizonDays int    `json:"horizon_days,omitempty" validate:"omitempty,gt=0"`
}
