// Package chat contains the domain logic for assistant conversations:
// append-only message transcripts and the scripted reply generator.
package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/shared"
)

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one transcript entry. Messages are immutable once
// appended.
type Message struct {
	ID        uuid.UUID
	Role      Role
	Content   string
	Timestamp time.Time
}

// Conversation is an ordered, append-only message transcript
type Conversation struct {
	shared.AggregateRoot

	id          uuid.UUID
	title       string
	messages    []Message
	pinned      bool
	lastUpdated time.Time
	createdAt   time.Time
}

// maxAutoTitleLen bounds titles derived from a first message
const maxAutoTitleLen = 50

// NewConversation creates an empty conversation with the given title
func NewConversation(title string) (*Conversation, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	now := time.Now()
	return &Conversation{
		id:          uuid.New(),
		title:       title,
		lastUpdated: now,
		createdAt:   now,
	}, nil
}

// Restore rebuilds a conversation from persisted state
func Restore(id uuid.UUID, title string, messages []Message, pinned bool, lastUpdated, createdAt time.Time) *Conversation {
	return &Conversation{
		id:          id,
		title:       title,
		messages:    append([]Message(nil), messages...),
		pinned:      pinned,
		lastUpdated: lastUpdated,
		createdAt:   createdAt,
	}
}

// TitleFromMessage derives a conversation title from its first
// message: the leading 50 characters, with an ellipsis when truncated.
func TitleFromMessage(content string) string {
	runes := []rune(content)
	if len(runes) <= maxAutoTitleLen {
		return content
	}
	return string(runes[:maxAutoTitleLen]) + "..."
}

// ID returns the conversation's unique identifier
func (c *Conversation) ID() uuid.UUID { return c.id }

// Title returns the conversation title
func (c *Conversation) Title() string { return c.title }

// Messages returns the transcript in insertion order
func (c *Conversation) Messages() []Message { return c.messages }

// Pinned reports whether the conversation is pinned
func (c *Conversation) Pinned() bool { return c.pinned }

// LastUpdated returns when a message was last appended or the
// conversation was created
func (c *Conversation) LastUpdated() time.Time { return c.lastUpdated }

// CreatedAt returns when the conversation was created
func (c *Conversation) CreatedAt() time.Time { return c.createdAt }

// Append adds a message to the end of the transcript and bumps
// lastUpdated. The transcript is append-only: there is no removal or
// reorder operation.
func (c *Conversation) Append(role Role, content string) (Message, error) {
	if !role.Valid() {
		return Message{}, ErrInvalidRole
	}
	if content == "" {
		return Message{}, ErrEmptyMessage
	}

	msg := Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	c.messages = append(c.messages, msg)
	c.lastUpdated = msg.Timestamp

	c.AddEvent(MessageAppendedEvent{
		ConversationID: c.id,
		MessageID:      msg.ID,
		Role:           role,
		AppendedAt:     msg.Timestamp,
	})

	return msg, nil
}

// Rename changes the conversation title
func (c *Conversation) Rename(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	c.title = title
	return nil
}

// TogglePin flips the pinned flag and returns the new state
func (c *Conversation) TogglePin() bool {
	c.pinned = !c.pinned
	return c.pinned
}

// LastMessage returns the newest message, if any
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}
