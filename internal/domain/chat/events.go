package chat

import (
	"time"

	"github.com/google/uuid"
)

// MessageAppendedEvent is raised for every message added to a transcript
type MessageAppendedEvent struct {
	ConversationID uuid.UUID
	MessageID      uuid.UUID
	Role           Role
	AppendedAt     time.Time
}

// EventName returns the event name
func (e MessageAppendedEvent) EventName() string { return "chat.message_appended" }

// OccurredAt returns when the event occurred
func (e MessageAppendedEvent) OccurredAt() time.Time { return e.AppendedAt }
