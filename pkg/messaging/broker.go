package messaging

import (
	"context"
)

// Broker defines the interface for message brokers.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Event is the envelope published for entity lifecycle changes,
// e.g. {"type": "appointment.created", "payload": {...}}.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// NopBroker discards everything. Used when no broker is configured so
// services can publish unconditionally.
type NopBroker struct{}

func (NopBroker) Publish(context.Context, string, interface{}) error { return nil }

func (NopBroker) Subscribe(context.Context, string) (<-chan []byte, error) {
	ch := make(chan []byte)
	close(ch)
	return ch, nil
}

func (NopBroker) Close() error { return nil }
