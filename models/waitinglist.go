package models

import "time"

// WaitingListEntry is a prospective client without a booking slot yet.
// Fully independent of Client and Week data.
type WaitingListEntry struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone"`
	DesiredPeriod string    `bson:"desiredperiod,omitempty" json:"desiredPeriod"`
	Notes         string    `bson:"notes,omitempty" json:"notes"`
	CreatedAt     time.Time `bson:"createdat" json:"createdAt"`
}
