package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversation(t *testing.T) {
	c, err := NewConversation("Quick Breakfast Ideas")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, "Quick Breakfast Ideas", c.Title())
	assert.False(t, c.Pinned())
	assert.Empty(t, c.Messages())
}

func TestNewConversation_RequiresTitle(t *testing.T) {
	_, err := NewConversation("")
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestTitleFromMessage(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short message kept whole", "Any dinner ideas?", "Any dinner ideas?"},
		{"exactly fifty chars kept whole", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"long message truncated with ellipsis", strings.Repeat("a", 51), strings.Repeat("a", 50) + "..."},
		{
			"multibyte runes counted as characters",
			strings.Repeat("é", 60),
			strings.Repeat("é", 50) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromMessage(tt.content))
		})
	}
}

func TestAppend(t *testing.T) {
	c, err := NewConversation("test")
	require.NoError(t, err)
	before := c.LastUpdated()

	time.Sleep(time.Millisecond)
	msg, err := c.Append(RoleUser, "What are some quick breakfast ideas?")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, RoleUser, msg.Role)
	require.Len(t, c.Messages(), 1)
	assert.True(t, c.LastUpdated().After(before))

	events := c.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "chat.message_appended", events[0].EventName())
}

func TestAppend_PreservesOrder(t *testing.T) {
	c, err := NewConversation("test")
	require.NoError(t, err)

	_, err = c.Append(RoleUser, "first")
	require.NoError(t, err)
	_, err = c.Append(RoleAssistant, "second")
	require.NoError(t, err)
	_, err = c.Append(RoleUser, "third")
	require.NoError(t, err)

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)
}

func TestAppend_Validation(t *testing.T) {
	c, err := NewConversation("test")
	require.NoError(t, err)

	_, err = c.Append(Role("system"), "hi")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = c.Append(RoleUser, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	assert.Empty(t, c.Messages())
}

func TestTogglePin(t *testing.T) {
	c, err := NewConversation("test")
	require.NoError(t, err)

	assert.True(t, c.TogglePin())
	assert.True(t, c.Pinned())
	assert.False(t, c.TogglePin())
	assert.False(t, c.Pinned())
}

func TestRename(t *testing.T) {
	c, err := NewConversation("old")
	require.NoError(t, err)

	require.NoError(t, c.Rename("new"))
	assert.Equal(t, "new", c.Title())

	assert.ErrorIs(t, c.Rename(""), ErrTitleRequired)
}

func TestLastMessage(t *testing.T) {
	c, err := NewConversation("test")
	require.NoError(t, err)

	_, ok := c.LastMessage()
	assert.False(t, ok)

	_, err = c.Append(RoleUser, "hello")
	require.NoError(t, err)
	_, err = c.Append(RoleAssistant, "hi there")
	require.NoError(t, err)

	last, ok := c.LastMessage()
	require.True(t, ok)
	assert.Equal(t, "hi there", last.Content)
}
