package domain

import "time"

// Notification status constants
const (
	NotificationStatusQueued = "QUEUED"
	NotificationStatusSent   = "SENT"
)

// Notification is an outbox row awaiting delivery by an email sender
type Notification struct {
	NotificationID string    `db:"notification_id"`
	ApplicationID  string    `db:"application_id"`
	Recipient      string    `db:"recipient"`
	Subject        string    `db:"subject"`
	Body           string    `db:"body"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}
