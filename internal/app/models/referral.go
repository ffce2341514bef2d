package models

type Referral struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Specialty string `bson:"specialty,omitempty"`
	Message   string `bson:"message,omitempty"`
	TimeModel `bson:",inline"`
}
