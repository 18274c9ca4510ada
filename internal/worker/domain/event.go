package domain

// Application lifecycle events published by the API service
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)

// EventMessage represents an application event from RabbitMQ
type EventMessage struct {
	Event         string `json:"event"`
	ApplicationID string `json:"application_id"`
	DeliveryTag   uint64 `json:"-"`
}

// ApplicationDetails is the denormalized view of an application the worker
// needs to compose a notification
type ApplicationDetails struct {
	ApplicationID  string `db:"application_id"`
	Status         string `db:"status"`
	ApplicantEmail string `db:"applicant_email"`
	JobTitle       string `db:"job_title"`
	PosterEmail    string `db:"poster_email"`
}
