package handler

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Application lifecycle events consumed by the worker service
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)

type applicationEvent struct {
	Event         string `json:"event"`
	ApplicationID string `json:"application_id"`
}

// publishApplicationEvent is best effort: notification delivery must never
// fail the request that triggered it
func publishApplicationEvent(ctx context.Context, logger *slog.Logger, publisher EventPublisher, event, applicationID string) {
	if publisher == nil {
		return
	}

	body, err := json.Marshal(applicationEvent{
		Event:         event,
		ApplicationID: applicationID,
	})
	if err != nil {
		logger.Error("Failed to marshal application event",
			slog.String("event", event),
			slog.String("application_id", applicationID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := publisher.Publish(ctx, body, "application/json"); err != nil {
		logger.Error("Failed to publish application event",
			slog.String("event", event),
			slog.String("application_id", applicationID),
			slog.String("error", err.Error()),
		)
		return
	}

	logger.Debug("Application event published",
		slog.String("event", event),
		slog.String("application_id", applicationID),
	)
}
