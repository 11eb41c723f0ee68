// internal/model/message.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joao-vitor-prudente/personia/internal/domain"
)

type ReplyStatus string

const (
	ReplyPending  ReplyStatus = "pending"
	ReplyFinished ReplyStatus = "finished"
)

// Message is one human utterance plus the set of per-persona replies it
// provoked. Rows are append-only; after insertion only the replies column
// mutates, and always as a whole (copy-on-write).
type Message struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExperimentID uuid.UUID `gorm:"type:uuid;not null;index" json:"experiment_id"`
	Author       string    `gorm:"type:text;not null" json:"author"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Replies      Replies   `gorm:"type:jsonb;not null" json:"replies"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Reply is one persona's response to a message. The Status discriminant
// gates the remaining fields: Content, OpenaiReplyID and FinishedAt are set
// iff Status is finished. AuthorID never changes once the reply exists, and
// a finished reply never goes back to pending.
type Reply struct {
	AuthorID      uuid.UUID   `json:"author_id"`
	Status        ReplyStatus `json:"status"`
	Content       string      `json:"content,omitempty"`
	OpenaiReplyID string      `json:"openai_reply_id,omitempty"`
	FinishedAt    *time.Time  `json:"finished_at,omitempty"`
}

func (r Reply) Pending() bool {
	return r.Status == ReplyPending
}

type Replies []Reply

// Scan implements the sql.Scanner interface
func (r *Replies) Scan(value interface{}) error {
	if value == nil {
		*r = Replies{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, r)
	}
	return json.Unmarshal(bytes, r)
}

// Value implements the driver.Valuer interface
func (r Replies) Value() (driver.Value, error) {
	if r == nil {
		return json.Marshal(Replies{})
	}
	return json.Marshal(r)
}

// NewPendingReplies builds the reply set for a fresh message: exactly one
// pending reply per participating persona.
func NewPendingReplies(personaIDs []uuid.UUID) Replies {
	replies := make(Replies, 0, len(personaIDs))
	for _, id := range personaIDs {
		replies = append(replies, Reply{AuthorID: id, Status: ReplyPending})
	}
	return replies
}

// HasPendingReplies is true while any persona has not yet answered. It is
// the sole turn-taking guard: no new message may be sent while it holds.
func (m *Message) HasPendingReplies() bool {
	for _, reply := range m.Replies {
		if reply.Pending() {
			return true
		}
	}
	return false
}

// FindReply returns the reply authored by the given persona.
func (m *Message) FindReply(personaID uuid.UUID) (Reply, bool) {
	for _, reply := range m.Replies {
		if reply.AuthorID == personaID {
			return reply, true
		}
	}
	return Reply{}, false
}

// FinishReply rewrites the one reply owned by personaID from pending to
// finished and returns the full new replies slice; every other element is
// carried over untouched. Finishing an already-finished reply is a no-op so
// a retried step cannot clobber committed content. A missing reply means the
// message was built without that persona, which the message constructor
// rules out.
func (m *Message) FinishReply(personaID uuid.UUID, content, openaiReplyID string, finishedAt time.Time) (Replies, error) {
	found := false
	replies := make(Replies, len(m.Replies))
	for i, reply := range m.Replies {
		if reply.AuthorID != personaID {
			replies[i] = reply
			continue
		}
		found = true
		if !reply.Pending() {
			replies[i] = reply
			continue
		}
		at := finishedAt
		replies[i] = Reply{
			AuthorID:      reply.AuthorID,
			Status:        ReplyFinished,
			Content:       content,
			OpenaiReplyID: openaiReplyID,
			FinishedAt:    &at,
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: message %s has no reply for persona %s", domain.ErrInvariantViolation, m.ID, personaID)
	}
	return replies, nil
}

// PersonaReply pairs a participant with its finished reply on a message.
type PersonaReply struct {
	Persona Persona
	Reply   Reply
}

// PartitionPersonasByPreviousReply splits a turn's participants by whether
// they answered the given message. Continuing personas carry their finished
// reply so the next call can chain on it; personas with no reply at all
// joined the experiment after the message was sent and start over on a fresh
// thread. A pending reply is still a data-consistency defect: callers run
// this only after the turn guard has proven the message fully answered.
func PartitionPersonasByPreviousReply(message *Message, personas []Persona) (continuing []PersonaReply, fresh []Persona, err error) {
	for _, persona := range personas {
		reply, ok := message.FindReply(persona.ID)
		if !ok {
			fresh = append(fresh, persona)
			continue
		}
		if reply.Pending() {
			return nil, nil, fmt.Errorf("%w: persona %s has a pending reply on message %s", domain.ErrInvariantViolation, persona.ID, message.ID)
		}
		continuing = append(continuing, PersonaReply{Persona: persona, Reply: reply})
	}
	return continuing, fresh, nil
}
