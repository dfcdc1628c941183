// Package chat provides the application layer for assistant
// conversations: transcript management plus the delayed scripted-reply
// scheduler.
package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// DefaultReplyDelay paces the assistant so replies feel typed rather
// than instantaneous
const DefaultReplyDelay = time.Second

// ChatService implements the conversation use cases. Assistant replies
// are generated on a goroutine per user message, delayed by replyDelay
// and delivered through the ReplyPublisher.
type ChatService struct {
	conversationRepo outbound.ConversationRepository
	publisher        outbound.ReplyPublisher
	responder        *chat.Responder
	replyDelay       time.Duration
	logger           *zap.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewChatService creates a new chat service. A replyDelay of zero
// falls back to the default one-second pacing.
func NewChatService(
	conversationRepo outbound.ConversationRepository,
	publisher outbound.ReplyPublisher,
	responder *chat.Responder,
	replyDelay time.Duration,
	logger *zap.Logger,
) *ChatService {
	if replyDelay <= 0 {
		replyDelay = DefaultReplyDelay
	}
	baseCtx, cancel := context.WithCancel(context.Background())
	return &ChatService{
		conversationRepo: conversationRepo,
		publisher:        publisher,
		responder:        responder,
		replyDelay:       replyDelay,
		logger:           logger.Named("chat-service"),
		baseCtx:          baseCtx,
		cancel:           cancel,
	}
}

// Close cancels pending assistant replies and waits for the reply
// goroutines to drain
func (s *ChatService) Close() error {
	s.cancel()
	s.wg.Wait()
	return nil
}

// ListConversations returns pinned conversations first, then the rest,
// each group ordered by last update descending
func (s *ChatService) ListConversations(ctx context.Context) ([]inbound.ConversationSummaryDTO, error) {
	entities, err := s.conversationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list conversations", err)
	}

	sorted := append([]*chat.Conversation(nil), entities...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pinned() != sorted[j].Pinned() {
			return sorted[i].Pinned()
		}
		return sorted[i].LastUpdated().After(sorted[j].LastUpdated())
	})

	summaries := make([]inbound.ConversationSummaryDTO, 0, len(sorted))
	for _, c := range sorted {
		summaries = append(summaries, inbound.ConversationSummaryDTO{
			ID:           c.ID(),
			Title:        c.Title(),
			Pinned:       c.Pinned(),
			LastUpdated:  c.LastUpdated().UnixMilli(),
			MessageCount: len(c.Messages()),
		})
	}
	return summaries, nil
}

// GetConversation returns the full transcript
func (s *ChatService) GetConversation(ctx context.Context, conversationID uuid.UUID) (*inbound.ConversationDTO, error) {
	entity, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	dto := conversationToDTO(entity)
	return &dto, nil
}

// RenameConversation sets a new title
func (s *ChatService) RenameConversation(ctx context.Context, conversationID uuid.UUID, title string) error {
	entity, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return err
	}

	if err := entity.Rename(title); err != nil {
		return errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.conversationRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update conversation", err)
	}
	s.publishEvents(entity)
	return nil
}

// TogglePin flips the pinned flag and returns the new state
func (s *ChatService) TogglePin(ctx context.Context, conversationID uuid.UUID) (bool, error) {
	entity, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return false, err
	}

	pinned := entity.TogglePin()

	if err := s.conversationRepo.Update(ctx, entity); err != nil {
		return false, errors.NewDatabaseError("update conversation", err)
	}
	s.publishEvents(entity)
	return pinned, nil
}

// DeleteConversation removes a conversation. Deleting an unknown id is
// a no-op.
func (s *ChatService) DeleteConversation(ctx context.Context, conversationID uuid.UUID) error {
	if err := s.conversationRepo.Delete(ctx, conversationID); err != nil {
		return errors.NewDatabaseError("delete conversation", err)
	}
	s.logger.Info("Conversation deleted", zap.String("conversation_id", conversationID.String()))
	return nil
}

// SendMessage appends the user message and schedules the assistant
// reply. A nil ConversationID starts a new conversation titled from
// the message's leading characters.
func (s *ChatService) SendMessage(ctx context.Context, cmd inbound.SendMessageCommand) (*inbound.SendMessageResultDTO, error) {
	if cmd.Content == "" {
		return nil, errors.NewValidationError(chat.ErrEmptyMessage.Error()).WithCause(chat.ErrEmptyMessage)
	}

	var (
		entity *chat.Conversation
		fresh  bool
		err    error
	)
	if cmd.ConversationID == nil {
		entity, err = chat.NewConversation(chat.TitleFromMessage(cmd.Content))
		if err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
		fresh = true
	} else {
		entity, err = s.findConversation(ctx, *cmd.ConversationID)
		if err != nil {
			return nil, err
		}
	}

	msg, err := entity.Append(chat.RoleUser, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if fresh {
		err = s.conversationRepo.Create(ctx, entity)
	} else {
		err = s.conversationRepo.Update(ctx, entity)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("save conversation", err)
	}

	s.publishEvents(entity)

	s.scheduleReply(entity.ID(), cmd.Content)

	return &inbound.SendMessageResultDTO{
		ConversationID: entity.ID(),
		Message:        messageToDTO(msg),
	}, nil
}

// scheduleReply generates the assistant reply after the configured
// delay. The reply is persisted and then pushed to connected clients.
// Service shutdown cancels replies still in their delay window.
func (s *ChatService) scheduleReply(conversationID uuid.UUID, userMessage string) {
	reply := s.responder.Reply(userMessage)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-s.baseCtx.Done():
			return
		case <-time.After(s.replyDelay):
		}

		ctx, cancel := context.WithTimeout(s.baseCtx, 5*time.Second)
		defer cancel()

		entity, err := s.conversationRepo.FindByID(ctx, conversationID)
		if err != nil {
			s.logger.Error("Failed to load conversation for reply",
				zap.String("conversation_id", conversationID.String()),
				zap.Error(err),
			)
			return
		}
		if entity == nil {
			// Conversation deleted during the delay window; drop the reply.
			return
		}

		msg, err := entity.Append(chat.RoleAssistant, reply)
		if err != nil {
			s.logger.Error("Failed to append assistant reply", zap.Error(err))
			return
		}

		if err := s.conversationRepo.Update(ctx, entity); err != nil {
			s.logger.Error("Failed to persist assistant reply",
				zap.String("conversation_id", conversationID.String()),
				zap.Error(err),
			)
			return
		}

		s.publishEvents(entity)

		s.publisher.PublishReply(conversationID, msg)
	}()
}

// publishEvents drains the events recorded on the aggregate after a
// successful write. There is no message bus behind this deployment, so
// events end at the log.
func (s *ChatService) publishEvents(entity *chat.Conversation) {
	for _, event := range entity.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.String("conversation_id", entity.ID().String()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

func (s *ChatService) findConversation(ctx context.Context, id uuid.UUID) (*chat.Conversation, error) {
	entity, err := s.conversationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("find conversation", err)
	}
	if entity == nil {
		return nil, errors.NewConversationNotFoundError(id.String())
	}
	return entity, nil
}

func messageToDTO(m chat.Message) inbound.MessageDTO {
	return inbound.MessageDTO{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp.UnixMilli(),
	}
}

func conversationToDTO(c *chat.Conversation) inbound.ConversationDTO {
	messages := make([]inbound.MessageDTO, 0, len(c.Messages()))
	for _, m := range c.Messages() {
		messages = append(messages, messageToDTO(m))
	}
	return inbound.ConversationDTO{
		ID:          c.ID(),
		Title:       c.Title(),
		Pinned:      c.Pinned(),
		LastUpdated: c.LastUpdated().UnixMilli(),
		Messages:    messages,
	}
}
