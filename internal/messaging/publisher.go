package messaging

import (
	"encoding/json"
	"fmt"
)

// Sender delivers raw payloads to a subject.
type Sender interface {
	Publish(subject string, data []byte) error
}

// EventPublisher JSON-encodes engine events onto subjects.
type EventPublisher struct {
	sender Sender
}

func NewEventPublisher(sender Sender) *EventPublisher {
	return &EventPublisher{sender: sender}
}

func (p *EventPublisher) PublishEvent(subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling event for %s: %w", subject, err)
	}
	if err := p.sender.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}
