package models

import "time"

// Order is an agency media order tracked alongside the occupancy board.
// Plain CRUD, no relation to the week computation.
type Order struct {
	ID            string    `bson:"id" json:"id"`
	Client        string    `bson:"client" json:"client"`
	Agency        string    `bson:"agency" json:"agency"`
	Approved      bool      `bson:"approved" json:"approved"`
	Type          string    `bson:"type" json:"type"`
	From          string    `bson:"from" json:"from"` // YYYY-MM-DD
	To            string    `bson:"to" json:"to"`     // YYYY-MM-DD
	MediaReceived bool      `bson:"mediareceived" json:"mediaReceived"`
	Price         float64   `bson:"price" json:"price"`
	InvoiceID     string    `bson:"invoiceid,omitempty" json:"invoiceId"`
	InvoiceSent   bool      `bson:"invoicesent" json:"invoiceSent"`
	CreatedAt     time.Time `bson:"createdat" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedat" json:"updatedAt"`
}
