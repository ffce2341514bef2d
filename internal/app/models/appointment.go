package models

type Appointment struct {
	ID              string `bson:"_id,omitempty"`
	DoctorID        string `bson:"doctorId"`
	SlotID          string `bson:"slotId"`
	Date            string `bson:"date"`
	Time            string `bson:"time"`
	DurationMinutes int    `bson:"durationMinutes"`
	PatientName     string `bson:"patientName"`
	PatientEmail    string `bson:"patientEmail"`
	PatientPhone    string `bson:"patientPhone,omitempty"`
	Notes           string `bson:"notes,omitempty"`
	TimeModel       `bson:",inline"`
}
