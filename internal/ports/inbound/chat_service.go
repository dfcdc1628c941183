package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/chat"
)

// ChatService defines the use cases for assistant conversations
type ChatService interface {
	// ListConversations returns pinned conversations first, then the
	// rest, each group ordered by last update descending.
	ListConversations(ctx context.Context) ([]ConversationSummaryDTO, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*ConversationDTO, error)
	RenameConversation(ctx context.Context, conversationID uuid.UUID, title string) error
	TogglePin(ctx context.Context, conversationID uuid.UUID) (bool, error)
	DeleteConversation(ctx context.Context, conversationID uuid.UUID) error

	// SendMessage appends the user message and schedules the scripted
	// assistant reply. A nil ConversationID starts a new conversation
	// titled from the message.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*SendMessageResultDTO, error)
}

// SendMessageCommand carries one user message
type SendMessageCommand struct {
	ConversationID *uuid.UUID `json:"conversation_id"`
	Content        string     `json:"content" validate:"required"`
}

// MessageDTO is the data transfer object for transcript entries
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Role      chat.Role `json:"role"`
	Content   string    `json:"content"`
	Timestamp int64     `json:"timestamp"` // milliseconds
}

// ConversationSummaryDTO is a transcript-free listing row
type ConversationSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Pinned       bool      `json:"pinned"`
	LastUpdated  int64     `json:"last_updated"` // milliseconds
	MessageCount int       `json:"message_count"`
}

// ConversationDTO is the full transcript view
type ConversationDTO struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Pinned      bool         `json:"pinned"`
	LastUpdated int64        `json:"last_updated"` // milliseconds
	Messages    []MessageDTO `json:"messages"`
}

// SendMessageResultDTO reports the appended user message and the
// conversation it landed in (fresh or existing)
type SendMessageResultDTO struct {
	ConversationID uuid.UUID  `json:"conversation_id"`
	Message        MessageDTO `json:"message"`
}
