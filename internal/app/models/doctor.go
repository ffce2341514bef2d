package models

import (
	"strings"
	"time"

	"slotly-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

type Doctor struct {
	ID          string `bson:"_id,omitempty"`
	CustomerID  string `bson:"customerId"`
	Name        string `bson:"name"`
	Specialty   string `bson:"specialty,omitempty"`
	Link        string `bson:"link"`
	About       string `bson:"about,omitempty"`
	Email       string `bson:"email,omitempty"`
	PhotoObject string `bson:"photoObject,omitempty"`
	TimeModel   `bson:",inline"`
}

func (d *Doctor) IsTrial() bool {
	return strings.HasPrefix(d.CustomerID, constvars.TrialCustomerIDPrefix)
}

// trialDaysElapsed counts whole days since the trial account was created.
func (d *Doctor) trialDaysElapsed(now time.Time) int {
	return int(now.Sub(d.CreatedAt) / (24 * time.Hour))
}

func (d *Doctor) TrialExpired(now time.Time) bool {
	if !d.IsTrial() {
		return false
	}
	return d.trialDaysElapsed(now) >= constvars.TrialPeriodDays
}

func (d *Doctor) TrialDaysRemaining(now time.Time) int {
	if !d.IsTrial() {
		return 0
	}
	remaining := constvars.TrialPeriodDays - d.trialDaysElapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (d *Doctor) ConvertToBsonM() bson.M {
	return bson.M{
		"customerId":  d.CustomerID,
		"name":        d.Name,
		"specialty":   d.Specialty,
		"link":        d.Link,
		"about":       d.About,
		"email":       d.Email,
		"photoObject": d.PhotoObject,
		"updatedAt":   d.UpdatedAt,
	}
}
