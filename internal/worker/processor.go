package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aayushkhanal47/jobboard-be/internal/worker/domain"
)

// processEvent turns one application event into a notification outbox row
func (w *Worker) processEvent(ctx context.Context, msg *domain.EventMessage) error {
	w.logger.Info("Processing event",
		slog.String("event", msg.Event),
		slog.String("application_id", msg.ApplicationID),
		slog.String("worker_id", w.workerID),
	)

	eventCtx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	details, err := w.storage.GetApplicationDetails(eventCtx, msg.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			w.logger.Warn("Application referenced by event no longer exists",
				slog.String("application_id", msg.ApplicationID),
			)
			return fmt.Errorf("application %s: %w", msg.ApplicationID, err)
		}
		// database errors are assumed transient
		return domain.NewRetryableError(fmt.Errorf("failed to load application details: %w", err))
	}

	notification, err := composeNotification(msg.Event, details)
	if err != nil {
		w.logger.Warn("Dropping event",
			slog.String("event", msg.Event),
			slog.String("application_id", msg.ApplicationID),
			slog.String("error", err.Error()),
		)
		return err
	}

	if err := w.storage.CreateNotification(eventCtx, notification); err != nil {
		return domain.NewRetryableError(err)
	}

	return nil
}

// composeNotification builds the outbox row for an event. Submitted events
// notify the job poster; status changes notify the applicant.
func composeNotification(event string, details *domain.ApplicationDetails) (*domain.Notification, error) {
	notification := &domain.Notification{
		NotificationID: uuid.New().String(),
		ApplicationID:  details.ApplicationID,
		Status:         domain.NotificationStatusQueued,
		CreatedAt:      time.Now(),
	}

	switch event {
	case domain.EventApplicationSubmitted:
		notification.Recipient = details.PosterEmail
		notification.Subject = fmt.Sprintf("New application for %s", details.JobTitle)
		notification.Body = fmt.Sprintf(
			"%s has applied for the %s position. Review the application in the admin panel.",
			details.ApplicantEmail, details.JobTitle,
		)

	case domain.EventApplicationStatusChanged:
		notification.Recipient = details.ApplicantEmail
		notification.Subject = fmt.Sprintf("Update on your application for %s", details.JobTitle)
		notification.Body = fmt.Sprintf(
			"Your application for the %s position is now %s.",
			details.JobTitle, details.Status,
		)

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEvent, event)
	}

	return notification, nil
}
