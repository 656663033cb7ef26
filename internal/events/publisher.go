// Package events publishes drive lifecycle events so downstream consumers
// (mailers, dashboards) can react without coupling to this service.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Drive lifecycle subjects.
const (
	SubjectDrivePosted    = "placement.drive.posted"
	SubjectDriveCompleted = "placement.drive.completed"
	SubjectDriveCancelled = "placement.drive.cancelled"
)

// DriveEvent is the wire payload for drive lifecycle subjects.
type DriveEvent struct {
	CompanyID     uint      `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	CompanyType   string    `json:"company_type,omitempty"`
	SelectedCount int       `json:"selected_count"`
	Source        string    `json:"source"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher emits drive lifecycle events. Publishing is best effort: a broker
// outage must never fail the business operation that triggered the event.
type Publisher interface {
	PublishDrive(ctx context.Context, subject string, event DriveEvent) error
}

type natsPublisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewNATSPublisher wraps a NATS connection as an event publisher.
func NewNATSPublisher(conn *nats.Conn, logger zerolog.Logger) Publisher {
	return &natsPublisher{
		conn:   conn,
		logger: logger.With().Str("component", "event_publisher").Logger(),
	}
}

func (p *natsPublisher) PublishDrive(_ context.Context, subject string, event DriveEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Uint("company_id", event.CompanyID).Msg("failed to publish drive event")
		return err
	}

	return nil
}
