package service

import (
	"puzzlebox/internal/session"
)

// Publisher delivers an event to every stream a player has open.
type Publisher interface {
	Publish(playerID string, ev session.Event)
}

// EventRelay forwards session events to a Publisher. Haptic requests are
// fire-and-forget: without a publisher they are dropped.
type EventRelay struct {
	pub Publisher
}

func NewEventRelay(pub Publisher) *EventRelay {
	return &EventRelay{pub: pub}
}

func (r *EventRelay) Emit(playerID string, ev session.Event) {
	if ev.Type == session.EventHaptic {
		if h, ok := ev.Payload.(session.Haptic); ok {
			HapticsSent.WithLabelValues(string(h)).Inc()
		}
	}
	if r == nil || r.pub == nil {
		return
	}
	r.pub.Publish(playerID, ev)
}
