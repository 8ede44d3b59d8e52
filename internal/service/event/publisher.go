// Package event publishes entity lifecycle events to the message broker.
// Publishing is best-effort: a broker failure is logged and counted but
// never fails the request that triggered it.
package event

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/wizardXds/medicare/pkg/messaging"
	"github.com/wizardXds/medicare/pkg/metrics"
)

// Channel is the broker channel all lifecycle events go to.
const Channel = "medicare.events"

type Publisher struct {
	broker  messaging.Broker
	metrics *metrics.Metrics
}

func NewPublisher(broker messaging.Broker, m *metrics.Metrics) *Publisher {
	if broker == nil {
		broker = messaging.NopBroker{}
	}
	return &Publisher{broker: broker, metrics: m}
}

// Publish sends one event, e.g. Publish(ctx, "appointment.created", appt).
func (p *Publisher) Publish(ctx context.Context, eventType string, payload interface{}) {
	err := p.broker.Publish(ctx, Channel, messaging.Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish event")
		if p.metrics != nil {
			p.metrics.EventsFailed.WithLabelValues(eventType).Inc()
		}
		return
	}
	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(eventType).Inc()
	}
}
