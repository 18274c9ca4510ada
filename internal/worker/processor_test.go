package worker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayushkhanal47/jobboard-be/internal/worker/domain"
)

func TestComposeNotification(t *testing.T) {
	details := &domain.ApplicationDetails{
		ApplicationID:  "app-1",
		Status:         "ACCEPTED",
		ApplicantEmail: "alice@example.com",
		JobTitle:       "Backend Engineer",
		PosterEmail:    "hr@example.com",
	}

	t.Run("submitted event notifies the poster", func(t *testing.T) {
		n, err := composeNotification(domain.EventApplicationSubmitted, details)
		require.NoError(t, err)

		assert.Equal(t, "hr@example.com", n.Recipient)
		assert.Equal(t, "app-1", n.ApplicationID)
		assert.Equal(t, domain.NotificationStatusQueued, n.Status)
		assert.Contains(t, n.Subject, "Backend Engineer")
		assert.Contains(t, n.Body, "alice@example.com")
		assert.NotEmpty(t, n.NotificationID)
	})

	t.Run("status change notifies the applicant", func(t *testing.T) {
		n, err := composeNotification(domain.EventApplicationStatusChanged, details)
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", n.Recipient)
		assert.Contains(t, n.Subject, "Backend Engineer")
		assert.Contains(t, n.Body, "ACCEPTED")
	})

	t.Run("unknown event", func(t *testing.T) {
		n, err := composeNotification("application.archived", details)
		assert.Nil(t, n)
		assert.ErrorIs(t, err, domain.ErrUnknownEvent)
	})
}

func TestShouldRequeue(t *testing.T) {
	w := &Worker{}

	tests := []struct {
		name    string
		err     error
		requeue bool
	}{
		{
			name:    "retryable error",
			err:     domain.NewRetryableError(errors.New("connection reset")),
			requeue: true,
		},
		{
			name:    "wrapped retryable error",
			err:     fmt.Errorf("processing: %w", domain.NewRetryableError(errors.New("timeout"))),
			requeue: true,
		},
		{
			name:    "application not found",
			err:     fmt.Errorf("application app-1: %w", domain.ErrApplicationNotFound),
			requeue: false,
		},
		{
			name:    "unknown event",
			err:     fmt.Errorf("%w: application.archived", domain.ErrUnknownEvent),
			requeue: false,
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			requeue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.requeue, w.shouldRequeue(tt.err))
		})
	}
}
