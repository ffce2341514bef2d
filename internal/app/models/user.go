package models

import "go.mongodb.org/mongo-driver/bson"

type User struct {
	ID         string `bson:"_id,omitempty"`
	CustomerID string `bson:"customerId"`
	Email      string `bson:"email"`
	Password   string `bson:"password"`
	DoctorID   string `bson:"doctorId,omitempty"`
	TimeModel  `bson:",inline"`
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"customerId": u.CustomerID,
		"email":      u.Email,
		"password":   u.Password,
		"doctorId":   u.DoctorID,
		"updatedAt":  u.UpdatedAt,
	}
}
