package chat

import "errors"

// Domain errors for chat operations

var (
	ErrTitleRequired = errors.New("conversation title is required")
	ErrInvalidRole   = errors.New("unknown message role")
	ErrEmptyMessage  = errors.New("message content is required")

	ErrConversationNotFound = errors.New("conversation not found")
)
