package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/memory"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// capturingPublisher records published replies and signals arrival
type capturingPublisher struct {
	mu      sync.Mutex
	replies []chat.Message
	arrived chan struct{}
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{arrived: make(chan struct{}, 16)}
}

func (p *capturingPublisher) PublishReply(conversationID uuid.UUID, message chat.Message) {
	p.mu.Lock()
	p.replies = append(p.replies, message)
	p.mu.Unlock()
	p.arrived <- struct{}{}
}

func (p *capturingPublisher) waitForReply(t *testing.T) chat.Message {
	t.Helper()
	select {
	case <-p.arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for assistant reply")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.replies[len(p.replies)-1]
}

func newService(t *testing.T, delay time.Duration) (*ChatService, *memory.ConversationRepository, *capturingPublisher) {
	t.Helper()
	repo := memory.NewConversationRepository()
	publisher := newCapturingPublisher()
	svc := NewChatService(repo, publisher, chat.NewResponder(1), delay, zap.NewNop())
	t.Cleanup(func() { _ = svc.Close() })
	return svc, repo, publisher
}

func TestSendMessage_NewConversationAutoTitled(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, _ := newService(t, 5*time.Millisecond)
	ctx := context.Background()

	result, err := svc.SendMessage(ctx, inbound.SendMessageCommand{
		Content: "What are some quick breakfast ideas for busy mornings please?",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.ConversationID)
	assert.Equal(t, chat.RoleUser, result.Message.Role)

	stored, err := repo.FindByID(ctx, result.ConversationID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	// First 50 characters plus an ellipsis.
	assert.Equal(t, "What are some quick breakfast ideas for busy morni...", stored.Title())

	require.NoError(t, svc.Close())
}

func TestSendMessage_AssistantReplyArrivesAfterDelay(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, publisher := newService(t, 10*time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	result, err := svc.SendMessage(ctx, inbound.SendMessageCommand{Content: "Suggest a recipe for tonight"})
	require.NoError(t, err)

	reply := publisher.waitForReply(t)

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, chat.RoleAssistant, reply.Role)
	assert.Contains(t, reply.Content, "Meals section")

	// The reply is also persisted on the transcript.
	stored, err := repo.FindByID(ctx, result.ConversationID)
	require.NoError(t, err)
	require.Len(t, stored.Messages(), 2)
	assert.Equal(t, chat.RoleAssistant, stored.Messages()[1].Role)

	require.NoError(t, svc.Close())
}

func TestSendMessage_AppendToExistingConversation(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, _, publisher := newService(t, time.Millisecond)
	ctx := context.Background()

	first, err := svc.SendMessage(ctx, inbound.SendMessageCommand{Content: "hello"})
	require.NoError(t, err)
	publisher.waitForReply(t)

	second, err := svc.SendMessage(ctx, inbound.SendMessageCommand{
		ConversationID: &first.ConversationID,
		Content:        "another question",
	})
	require.NoError(t, err)
	publisher.waitForReply(t)

	assert.Equal(t, first.ConversationID, second.ConversationID)

	dto, err := svc.GetConversation(ctx, first.ConversationID)
	require.NoError(t, err)
	assert.Len(t, dto.Messages, 4)

	require.NoError(t, svc.Close())
}

func TestSendMessage_UnknownConversation(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, _, _ := newService(t, time.Millisecond)
	unknown := uuid.New()

	_, err := svc.SendMessage(context.Background(), inbound.SendMessageCommand{
		ConversationID: &unknown,
		Content:        "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeConversationNotFound))
	require.NoError(t, svc.Close())
}

func TestSendMessage_EmptyContentRejected(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, _, _ := newService(t, time.Millisecond)

	_, err := svc.SendMessage(context.Background(), inbound.SendMessageCommand{Content: ""})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
	require.NoError(t, svc.Close())
}

func TestClose_CancelsPendingReplies(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, publisher := newService(t, time.Hour)
	ctx := context.Background()

	result, err := svc.SendMessage(ctx, inbound.SendMessageCommand{Content: "hello"})
	require.NoError(t, err)

	// Close before the delay elapses; the reply goroutine must exit
	// without publishing.
	require.NoError(t, svc.Close())

	publisher.mu.Lock()
	assert.Empty(t, publisher.replies)
	publisher.mu.Unlock()

	stored, err := repo.FindByID(ctx, result.ConversationID)
	require.NoError(t, err)
	assert.Len(t, stored.Messages(), 1)
}

func TestReplyDropped_WhenConversationDeletedDuringDelay(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, publisher := newService(t, 30*time.Millisecond)
	ctx := context.Background()

	result, err := svc.SendMessage(ctx, inbound.SendMessageCommand{Content: "hello"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, result.ConversationID))

	// Give the scheduler time to fire and find the conversation gone.
	time.Sleep(100 * time.Millisecond)
	publisher.mu.Lock()
	assert.Empty(t, publisher.replies)
	publisher.mu.Unlock()

	require.NoError(t, svc.Close())
}

func TestListConversations_PinnedFirstThenMostRecent(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, _ := newService(t, time.Millisecond)
	ctx := context.Background()

	now := time.Now()
	old := chat.Restore(uuid.New(), "old unpinned", nil, false, now.Add(-3*time.Hour), now.Add(-3*time.Hour))
	recent := chat.Restore(uuid.New(), "recent unpinned", nil, false, now.Add(-time.Hour), now.Add(-time.Hour))
	pinnedOld := chat.Restore(uuid.New(), "pinned old", nil, true, now.Add(-48*time.Hour), now.Add(-48*time.Hour))
	pinnedRecent := chat.Restore(uuid.New(), "pinned recent", nil, true, now.Add(-time.Minute), now.Add(-time.Minute))

	for _, c := range []*chat.Conversation{old, recent, pinnedOld, pinnedRecent} {
		require.NoError(t, repo.Create(ctx, c))
	}

	list, err := svc.ListConversations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, "pinned recent", list[0].Title)
	assert.Equal(t, "pinned old", list[1].Title)
	assert.Equal(t, "recent unpinned", list[2].Title)
	assert.Equal(t, "old unpinned", list[3].Title)

	require.NoError(t, svc.Close())
}

func TestTogglePin(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, _ := newService(t, time.Millisecond)
	ctx := context.Background()

	c, err := chat.NewConversation("test")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	pinned, err := svc.TogglePin(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = svc.TogglePin(ctx, c.ID())
	require.NoError(t, err)
	assert.False(t, pinned)

	require.NoError(t, svc.Close())
}

func TestDeleteConversation_UnknownIDIsNoOp(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, _, _ := newService(t, time.Millisecond)

	assert.NoError(t, svc.DeleteConversation(context.Background(), uuid.New()))
	require.NoError(t, svc.Close())
}

func TestSendMessage_DrainsDomainEvents(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, repo, publisher := newService(t, time.Millisecond)
	ctx := context.Background()

	result, err := svc.SendMessage(ctx, inbound.SendMessageCommand{Content: "First question about dinner"})
	require.NoError(t, err)
	publisher.waitForReply(t)

	for i := 0; i < 4; i++ {
		id := result.ConversationID
		_, err := svc.SendMessage(ctx, inbound.SendMessageCommand{ConversationID: &id, Content: "Another question about dinner"})
		require.NoError(t, err)
		publisher.waitForReply(t)
	}

	// The memory repository hands back the live aggregate, so any event
	// the service left behind would still be pending here.
	stored, err := repo.FindByID(ctx, result.ConversationID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Messages(), 10)
	assert.Empty(t, stored.Events())

	require.NoError(t, svc.Close())
}
