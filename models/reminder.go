package models

// Reminder is a due-date note attached to a client. The editing flow
// treats it as a 1:1 attribute: saving replaces any existing reminder
// for the client, clearing the date deletes it.
type Reminder struct {
	ID       string `bson:"id" json:"id"`
	ClientID string `bson:"clientid" json:"clientId"`
	RemindAt string `bson:"remindat" json:"remindAt"` // YYYY-MM-DD
	Message  string `bson:"message" json:"message"`
}
