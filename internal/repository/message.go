// internal/repository/message.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

type MessageRepositoryIface interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	FindLastByExperiment(ctx context.Context, experimentID uuid.UUID) (*model.Message, error)
	FindPageByExperiment(ctx context.Context, experimentID uuid.UUID, opts PaginationOpts) (*MessagePage, error)
	FinishReply(ctx context.Context, messageID, personaID uuid.UUID, content, openaiReplyID string, finishedAt time.Time) (*model.Message, error)
}

// PaginationOpts mirrors the feed consumer's contract: NumItems per page and
// an opaque cursor from the previous page.
type PaginationOpts struct {
	NumItems int    `json:"num_items"`
	Cursor   string `json:"cursor"`
}

type MessagePage struct {
	Messages       []model.Message `json:"messages"`
	ContinueCursor string          `json:"continue_cursor"`
	IsDone         bool            `json:"is_done"`
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("failed to create message: %w", result.Error)
	}
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var message model.Message
	result := r.db.WithContext(ctx).First(&message, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to find message: %w", result.Error)
	}
	return &message, nil
}

// FindLastByExperiment returns the most recent message of the thread, or
// domain.ErrMessageNotFound when the thread is still empty.
func (r *MessageRepository) FindLastByExperiment(ctx context.Context, experimentID uuid.UUID) (*model.Message, error) {
	var message model.Message
	result := r.db.WithContext(ctx).
		Where("experiment_id = ?", experimentID).
		Order("created_at desc, id desc").
		First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to find last message: %w", result.Error)
	}
	return &message, nil
}

// MessageCursor encodes a message's position in the feed. Pages order by
// (created_at, id) descending and the cursor carries both columns so that
// messages sharing a timestamp cannot be skipped across a page boundary.
func MessageCursor(m model.Message) string {
	return m.CreatedAt.UTC().Format(time.RFC3339Nano) + "," + m.ID.String()
}

func parseMessageCursor(cursor string) (time.Time, uuid.UUID, error) {
	at, rest, found := strings.Cut(cursor, ",")
	if !found {
		return time.Time{}, uuid.Nil, errors.New("missing id component")
	}
	before, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	id, err := uuid.Parse(rest)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	return before, id, nil
}

// buildMessagePage trims a numItems+1 fetch down to one page. The extra row,
// when present, proves more messages remain and the page's last message
// becomes the continuation cursor.
func buildMessagePage(messages []model.Message, numItems int) *MessagePage {
	page := &MessagePage{Messages: messages, IsDone: true}
	if len(messages) > numItems {
		page.Messages = messages[:numItems]
		page.IsDone = false
		page.ContinueCursor = MessageCursor(page.Messages[numItems-1])
	}
	return page
}

// FindPageByExperiment returns one reverse-chronological page. The cursor is
// the feed position of the last message on the previous page; an empty
// cursor starts from the newest message.
func (r *MessageRepository) FindPageByExperiment(ctx context.Context, experimentID uuid.UUID, opts PaginationOpts) (*MessagePage, error) {
	numItems := opts.NumItems
	if numItems <= 0 {
		numItems = 20
	}

	query := r.db.WithContext(ctx).
		Where("experiment_id = ?", experimentID).
		Order("created_at desc, id desc").
		Limit(numItems + 1)

	if opts.Cursor != "" {
		before, beforeID, err := parseMessageCursor(opts.Cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed pagination cursor", domain.ErrInvalidInput)
		}
		query = query.Where("(created_at, id) < (?, ?)", before, beforeID)
	}

	var messages []model.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	return buildMessagePage(messages, numItems), nil
}

// FinishReply transitions one persona's reply on the message from pending to
// finished. The read-modify-write of the replies column runs under a row
// lock: all fan-out tasks of a turn rewrite the same column, and the lock is
// what keeps one task's commit from erasing a sibling's.
func (r *MessageRepository) FinishReply(ctx context.Context, messageID, personaID uuid.UUID, content, openaiReplyID string, finishedAt time.Time) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&message, "id = ?", messageID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domain.ErrMessageNotFound
			}
			return fmt.Errorf("failed to find message: %w", result.Error)
		}

		replies, err := message.FinishReply(personaID, content, openaiReplyID, finishedAt)
		if err != nil {
			return err
		}

		if err := tx.Model(&message).Update("replies", replies).Error; err != nil {
			return fmt.Errorf("failed to update replies: %w", err)
		}
		message.Replies = replies
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}
