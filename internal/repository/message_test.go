// internal/repository/message_test.go
package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/joao-vitor-prudente/personia/internal/model"
)

func feedMessages(n int, at time.Time) []model.Message {
	messages := make([]model.Message, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, model.Message{
			ID:        uuid.New(),
			Content:   "message",
			CreatedAt: at.Add(-time.Duration(i) * time.Minute),
		})
	}
	return messages
}

func TestBuildMessagePage(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("extra row yields a continuation cursor", func(t *testing.T) {
		messages := feedMessages(2, now)

		page := buildMessagePage(messages, 1)

		assert.Len(t, page.Messages, 1)
		assert.Equal(t, messages[0].ID, page.Messages[0].ID)
		assert.False(t, page.IsDone)
		assert.Equal(t, MessageCursor(messages[0]), page.ContinueCursor)
	})

	t.Run("cursor resumes the page after the last returned message", func(t *testing.T) {
		messages := feedMessages(3, now)

		first := buildMessagePage(messages[:2], 1)
		assert.False(t, first.IsDone)

		before, beforeID, err := parseMessageCursor(first.ContinueCursor)
		assert.NoError(t, err)
		assert.True(t, before.Equal(messages[0].CreatedAt))
		assert.Equal(t, messages[0].ID, beforeID)

		second := buildMessagePage(messages[1:], 1)
		assert.Equal(t, messages[1].ID, second.Messages[0].ID)
		assert.False(t, second.IsDone)

		last := buildMessagePage(messages[2:], 1)
		assert.Equal(t, messages[2].ID, last.Messages[0].ID)
		assert.True(t, last.IsDone)
		assert.Empty(t, last.ContinueCursor)
	})

	t.Run("exact fit is done", func(t *testing.T) {
		messages := feedMessages(2, now)

		page := buildMessagePage(messages, 2)

		assert.Len(t, page.Messages, 2)
		assert.True(t, page.IsDone)
		assert.Empty(t, page.ContinueCursor)
	})

	t.Run("empty feed", func(t *testing.T) {
		page := buildMessagePage(nil, 1)

		assert.Empty(t, page.Messages)
		assert.True(t, page.IsDone)
	})
}

func TestMessageCursor(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 123456789, time.UTC)

	t.Run("round trip preserves the position", func(t *testing.T) {
		message := model.Message{ID: uuid.New(), CreatedAt: now}

		before, beforeID, err := parseMessageCursor(MessageCursor(message))

		assert.NoError(t, err)
		assert.True(t, before.Equal(message.CreatedAt))
		assert.Equal(t, message.ID, beforeID)
	})

	t.Run("shared timestamps stay distinguishable", func(t *testing.T) {
		first := model.Message{ID: uuid.New(), CreatedAt: now}
		second := model.Message{ID: uuid.New(), CreatedAt: now}

		assert.NotEqual(t, MessageCursor(first), MessageCursor(second))

		_, firstID, err := parseMessageCursor(MessageCursor(first))
		assert.NoError(t, err)
		assert.Equal(t, first.ID, firstID)
	})

	t.Run("malformed cursors are rejected", func(t *testing.T) {
		for _, cursor := range []string{
			"",
			now.Format(time.RFC3339Nano),
			"not-a-time," + uuid.NewString(),
			now.Format(time.RFC3339Nano) + ",not-a-uuid",
		} {
			_, _, err := parseMessageCursor(cursor)
			assert.Error(t, err, cursor)
		}
	})
}
