package models

import "slotly-service/internal/pkg/constvars"

type Slot struct {
	ID              string `bson:"_id,omitempty"`
	DoctorID        string `bson:"doctorId"`
	Date            string `bson:"date"`
	Time            string `bson:"time"`
	DurationMinutes int    `bson:"durationMinutes"`
	Status          string `bson:"status"`
	TimeModel       `bson:",inline"`
}

func (s *Slot) IsAvailable() bool {
	return s.Status == constvars.SlotStatusAvailable
}
