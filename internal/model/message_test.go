// internal/model/message_test.go
package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

func finishedReply(personaID uuid.UUID, content, replyID string) model.Reply {
	at := time.Now()
	return model.Reply{
		AuthorID:      personaID,
		Status:        model.ReplyFinished,
		Content:       content,
		OpenaiReplyID: replyID,
		FinishedAt:    &at,
	}
}

func TestNewPendingReplies(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	replies := model.NewPendingReplies([]uuid.UUID{first, second})

	assert.Len(t, replies, 2)
	assert.Equal(t, first, replies[0].AuthorID)
	assert.Equal(t, second, replies[1].AuthorID)
	for _, reply := range replies {
		assert.True(t, reply.Pending())
		assert.Empty(t, reply.Content)
		assert.Empty(t, reply.OpenaiReplyID)
		assert.Nil(t, reply.FinishedAt)
	}
}

func TestHasPendingReplies(t *testing.T) {
	personaID := uuid.New()

	t.Run("pending reply blocks the turn", func(t *testing.T) {
		message := &model.Message{Replies: model.NewPendingReplies([]uuid.UUID{personaID})}
		assert.True(t, message.HasPendingReplies())
	})

	t.Run("all replies finished", func(t *testing.T) {
		message := &model.Message{Replies: model.Replies{
			finishedReply(personaID, "done", "resp_1"),
		}}
		assert.False(t, message.HasPendingReplies())
	})

	t.Run("mixed replies still block", func(t *testing.T) {
		other := uuid.New()
		message := &model.Message{Replies: model.Replies{
			finishedReply(personaID, "done", "resp_1"),
			{AuthorID: other, Status: model.ReplyPending},
		}}
		assert.True(t, message.HasPendingReplies())
	})

	t.Run("no replies at all", func(t *testing.T) {
		message := &model.Message{}
		assert.False(t, message.HasPendingReplies())
	})
}

func TestFinishReply(t *testing.T) {
	target := uuid.New()
	other := uuid.New()
	now := time.Now()

	t.Run("finishes the pending reply and carries the rest", func(t *testing.T) {
		message := &model.Message{
			ID:      uuid.New(),
			Replies: model.NewPendingReplies([]uuid.UUID{target, other}),
		}

		replies, err := message.FinishReply(target, "the answer", "resp_42", now)

		assert.NoError(t, err)
		assert.Len(t, replies, 2)
		assert.Equal(t, model.ReplyFinished, replies[0].Status)
		assert.Equal(t, "the answer", replies[0].Content)
		assert.Equal(t, "resp_42", replies[0].OpenaiReplyID)
		assert.NotNil(t, replies[0].FinishedAt)
		assert.True(t, replies[1].Pending())

		// the original slice is untouched
		assert.True(t, message.Replies[0].Pending())
	})

	t.Run("already finished reply is a no-op", func(t *testing.T) {
		original := finishedReply(target, "first answer", "resp_1")
		message := &model.Message{ID: uuid.New(), Replies: model.Replies{original}}

		replies, err := message.FinishReply(target, "second answer", "resp_2", now)

		assert.NoError(t, err)
		assert.Equal(t, "first answer", replies[0].Content)
		assert.Equal(t, "resp_1", replies[0].OpenaiReplyID)
	})

	t.Run("missing reply is an invariant violation", func(t *testing.T) {
		message := &model.Message{
			ID:      uuid.New(),
			Replies: model.NewPendingReplies([]uuid.UUID{other}),
		}

		_, err := message.FinishReply(target, "answer", "resp_1", now)

		assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	})
}

func TestPartitionPersonasByPreviousReply(t *testing.T) {
	first := model.Persona{ID: uuid.New(), Name: "Ana"}
	second := model.Persona{ID: uuid.New(), Name: "Bruno"}

	t.Run("pairs each persona with its finished reply", func(t *testing.T) {
		message := &model.Message{Replies: model.Replies{
			finishedReply(second.ID, "b", "resp_b"),
			finishedReply(first.ID, "a", "resp_a"),
		}}

		continuing, fresh, err := model.PartitionPersonasByPreviousReply(message, []model.Persona{first, second})

		assert.NoError(t, err)
		assert.Empty(t, fresh)
		assert.Len(t, continuing, 2)
		assert.Equal(t, first.ID, continuing[0].Persona.ID)
		assert.Equal(t, "resp_a", continuing[0].Reply.OpenaiReplyID)
		assert.Equal(t, second.ID, continuing[1].Persona.ID)
		assert.Equal(t, "resp_b", continuing[1].Reply.OpenaiReplyID)
	})

	t.Run("persona without a reply starts fresh", func(t *testing.T) {
		message := &model.Message{Replies: model.Replies{
			finishedReply(first.ID, "a", "resp_a"),
		}}

		continuing, fresh, err := model.PartitionPersonasByPreviousReply(message, []model.Persona{first, second})

		assert.NoError(t, err)
		assert.Len(t, continuing, 1)
		assert.Equal(t, first.ID, continuing[0].Persona.ID)
		assert.Len(t, fresh, 1)
		assert.Equal(t, second.ID, fresh[0].ID)
	})

	t.Run("pending reply is an invariant violation", func(t *testing.T) {
		message := &model.Message{Replies: model.Replies{
			finishedReply(first.ID, "a", "resp_a"),
			{AuthorID: second.ID, Status: model.ReplyPending},
		}}

		_, _, err := model.PartitionPersonasByPreviousReply(message, []model.Persona{first, second})

		assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	})
}
