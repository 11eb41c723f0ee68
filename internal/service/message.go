// internal/service/message.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/model"
	"github.com/joao-vitor-prudente/personia/internal/repository"
	"github.com/joao-vitor-prudente/personia/internal/workflow"
)

type MessageService struct {
	repo        repository.MessageRepositoryIface
	experiments repository.ExperimentRepositoryIface
	personas    repository.PersonaRepositoryIface
	workflows   WorkflowClient
	taskQueue   string
	validate    *validator.Validate
}

func NewMessageService(
	repo repository.MessageRepositoryIface,
	experiments repository.ExperimentRepositoryIface,
	personas repository.PersonaRepositoryIface,
	workflows WorkflowClient,
	taskQueue string,
) *MessageService {
	return &MessageService{
		repo:        repo,
		experiments: experiments,
		personas:    personas,
		workflows:   workflows,
		taskQueue:   taskQueue,
		validate:    validator.New(),
	}
}

type SendMessageInput struct {
	ExperimentID uuid.UUID `json:"experiment_id" validate:"required"`
	Content      string    `json:"content" validate:"required"`
}

// Send enqueues the SendMessage workflow for one turn. The pending-replies
// guard runs here first so the caller fails fast, and again inside the
// workflow where it is authoritative; the check is read-before-write, so
// two racing sends can both pass here and the workflow's re-check is what
// actually holds the turn invariant.
func (s *MessageService) Send(ctx context.Context, identity *auth.Identity, input SendMessageInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	experiment, err := s.getOwnedExperiment(ctx, identity, input.ExperimentID)
	if err != nil {
		return "", err
	}

	lastMessage, err := s.repo.FindLastByExperiment(ctx, experiment.ID)
	if err != nil && !errors.Is(err, domain.ErrMessageNotFound) {
		return "", fmt.Errorf("fetching last message: %w", err)
	}
	if lastMessage != nil && lastMessage.HasPendingReplies() {
		return "", domain.ErrConflictingReply
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("send-message-%s-%s", experiment.ID, uuid.NewString()),
		TaskQueue: s.taskQueue,
	}
	run, err := s.workflows.ExecuteWorkflow(ctx, options, workflow.SendMessage, workflow.SendMessageWorkflowInput{
		ExperimentID: experiment.ID,
		Content:      input.Content,
		User:         identity.User(),
	})
	if err != nil {
		return "", fmt.Errorf("starting send-message workflow: %w", err)
	}
	return run.GetID(), nil
}

type ReplyWithAuthor struct {
	model.Reply
	Author model.Persona `json:"author"`
}

type MessageWithAuthors struct {
	model.Message
	Replies []ReplyWithAuthor `json:"replies"`
}

type MessageFeed struct {
	Messages       []MessageWithAuthors `json:"messages"`
	ContinueCursor string               `json:"continue_cursor"`
	IsDone         bool                 `json:"is_done"`
}

// List is the read-side join for the chat feed: one reverse-chronological
// page of messages with every reply's author resolved to the full persona.
func (s *MessageService) List(ctx context.Context, identity *auth.Identity, experimentID uuid.UUID, opts repository.PaginationOpts) (*MessageFeed, error) {
	experiment, err := s.getOwnedExperiment(ctx, identity, experimentID)
	if err != nil {
		return nil, err
	}

	personas, err := s.personas.FindAllByIDs(ctx, experiment.PersonaIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving personas: %w", err)
	}
	byID := make(map[uuid.UUID]model.Persona, len(personas))
	for _, persona := range personas {
		byID[persona.ID] = persona
	}

	page, err := s.repo.FindPageByExperiment(ctx, experimentID, opts)
	if err != nil {
		return nil, err
	}

	feed := &MessageFeed{
		Messages:       make([]MessageWithAuthors, 0, len(page.Messages)),
		ContinueCursor: page.ContinueCursor,
		IsDone:         page.IsDone,
	}
	for _, message := range page.Messages {
		withAuthors := MessageWithAuthors{
			Message: message,
			Replies: make([]ReplyWithAuthor, 0, len(message.Replies)),
		}
		for _, reply := range message.Replies {
			withAuthors.Replies = append(withAuthors.Replies, ReplyWithAuthor{
				Reply:  reply,
				Author: byID[reply.AuthorID],
			})
		}
		feed.Messages = append(feed.Messages, withAuthors)
	}
	return feed, nil
}

func (s *MessageService) getOwnedExperiment(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*model.Experiment, error) {
	experiment, err := s.experiments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if experiment.OrganizationID != identity.Organization.ID {
		return nil, domain.ErrForbidden
	}
	return experiment, nil
}
