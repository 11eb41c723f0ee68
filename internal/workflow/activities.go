// internal/workflow/activities.go

// Package workflow holds the two durable orchestrations: provisioning an
// experiment's assistant identities and driving one turn of the group chat.
// Activities are the only code that touches the store or the inference
// provider; workflows sequence them and own the retry policy. Temporal's
// event history records each completed activity, so a replayed workflow
// never re-runs a committed step; that is what makes the externally billable
// provider calls safe to retry at the workflow level.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/inference"
	"github.com/joao-vitor-prudente/personia/internal/model"
	"github.com/joao-vitor-prudente/personia/internal/repository"
)

// Error types attached to non-retryable application errors so failures keep
// their taxonomy across the workflow boundary.
const (
	ErrTypeNotFound           = "NotFound"
	ErrTypeForbidden          = "Forbidden"
	ErrTypeConflictingReply   = "ConflictingReply"
	ErrTypeInvariantViolation = "InvariantViolation"
)

type Activities struct {
	projects    repository.ProjectRepositoryIface
	personas    repository.PersonaRepositoryIface
	experiments repository.ExperimentRepositoryIface
	assistants  repository.AssistantRepositoryIface
	messages    repository.MessageRepositoryIface
	inference   inference.Client

	assistantModel string
	responseModel  string
}

func NewActivities(
	projects repository.ProjectRepositoryIface,
	personas repository.PersonaRepositoryIface,
	experiments repository.ExperimentRepositoryIface,
	assistants repository.AssistantRepositoryIface,
	messages repository.MessageRepositoryIface,
	inferenceClient inference.Client,
	assistantModel string,
	responseModel string,
) *Activities {
	return &Activities{
		projects:       projects,
		personas:       personas,
		experiments:    experiments,
		assistants:     assistants,
		messages:       messages,
		inference:      inferenceClient,
		assistantModel: assistantModel,
		responseModel:  responseModel,
	}
}

// nonRetryable wraps boundary failures that retrying cannot fix.
func nonRetryable(errType string, err error) error {
	return temporal.NewNonRetryableApplicationError(err.Error(), errType, err)
}

type GetPersonasInput struct {
	IDs  []uuid.UUID `json:"ids"`
	User auth.User   `json:"user"`
}

// GetPersonas bulk-fetches the participants and verifies every one belongs
// to the caller's organization.
func (a *Activities) GetPersonas(ctx context.Context, input GetPersonasInput) ([]model.Persona, error) {
	personas, err := a.personas.FindAllByIDs(ctx, input.IDs)
	if err != nil {
		if errors.Is(err, domain.ErrPersonaNotFound) {
			return nil, nonRetryable(ErrTypeNotFound, err)
		}
		return nil, err
	}
	for _, persona := range personas {
		if persona.OrganizationID != input.User.OrganizationID {
			return nil, nonRetryable(ErrTypeForbidden, fmt.Errorf("%w: persona %s", domain.ErrForbidden, persona.ID))
		}
	}
	return personas, nil
}

type GetProjectInput struct {
	ID   uuid.UUID `json:"id"`
	User auth.User `json:"user"`
}

func (a *Activities) GetProject(ctx context.Context, input GetProjectInput) (*model.Project, error) {
	project, err := a.projects.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, nonRetryable(ErrTypeNotFound, err)
		}
		return nil, err
	}
	if project.OrganizationID != input.User.OrganizationID {
		return nil, nonRetryable(ErrTypeForbidden, fmt.Errorf("%w: project %s", domain.ErrForbidden, project.ID))
	}
	return project, nil
}

type CreateExperimentInput struct {
	Name       string      `json:"name"`
	PersonaIDs []uuid.UUID `json:"persona_ids"`
	ProjectID  uuid.UUID   `json:"project_id"`
	User       auth.User   `json:"user"`
}

func (a *Activities) CreateExperiment(ctx context.Context, input CreateExperimentInput) (*model.Experiment, error) {
	experiment := &model.Experiment{
		OrganizationID: input.User.OrganizationID,
		Owner:          input.User.Email,
		Name:           input.Name,
		ProjectID:      input.ProjectID,
		PersonaIDs:     model.UUIDList(input.PersonaIDs),
	}
	if err := a.experiments.Create(ctx, experiment); err != nil {
		return nil, err
	}
	slog.Info("experiment persisted", "experiment_id", experiment.ID, "personas", len(input.PersonaIDs))
	return experiment, nil
}

type CreatePendingAssistantInput struct {
	ExperimentID uuid.UUID `json:"experiment_id"`
	ProjectID    uuid.UUID `json:"project_id"`
	PersonaID    uuid.UUID `json:"persona_id"`
}

// CreatePendingAssistant makes the pending row durable before the billable
// provider call; the upsert shape keeps a retried step on the same row.
func (a *Activities) CreatePendingAssistant(ctx context.Context, input CreatePendingAssistantInput) (*model.Assistant, error) {
	return a.assistants.CreatePending(ctx, input.ExperimentID, input.ProjectID, input.PersonaID)
}

type ProvisionAssistantInput struct {
	Persona    model.Persona            `json:"persona"`
	Project    model.Project            `json:"project"`
	Experiment inference.ExperimentStub `json:"experiment"`
}

type ProvisionAssistantOutput struct {
	OpenaiAssistantID string `json:"openai_assistant_id"`
}

// ProvisionAssistant creates the hosted conversational identity for one
// persona. Exactly one billable creation per (experiment, persona) pair:
// the workflow only reaches this activity once per pair, and a completed
// run is replayed from history rather than re-called.
func (a *Activities) ProvisionAssistant(ctx context.Context, input ProvisionAssistantInput) (*ProvisionAssistantOutput, error) {
	assistant, err := a.inference.CreateAssistant(ctx, inference.AssistantSpec{
		Name:         inference.TemplateAssistantName(input.Persona, input.Project, input.Experiment),
		Description:  inference.TemplateAssistantDescription(input.Persona, input.Project, input.Experiment),
		Instructions: inference.TemplateAssistantInstructions(input.Persona, input.Project, input.Experiment),
		Model:        a.assistantModel,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("assistant provisioned", "persona_id", input.Persona.ID, "openai_assistant_id", assistant.ID)
	return &ProvisionAssistantOutput{OpenaiAssistantID: assistant.ID}, nil
}

type FinishAssistantInput struct {
	AssistantID       uuid.UUID `json:"assistant_id"`
	OpenaiAssistantID string    `json:"openai_assistant_id"`
}

func (a *Activities) FinishAssistant(ctx context.Context, input FinishAssistantInput) error {
	return a.assistants.MarkFinished(ctx, input.AssistantID, input.OpenaiAssistantID)
}

type GetExperimentInput struct {
	ExperimentID uuid.UUID `json:"experiment_id"`
	User         auth.User `json:"user"`
}

// GetExperiment re-checks tenant ownership against the user captured at
// enqueue time; the workflow cannot re-derive an interactive caller.
func (a *Activities) GetExperiment(ctx context.Context, input GetExperimentInput) (*model.Experiment, error) {
	experiment, err := a.experiments.FindByID(ctx, input.ExperimentID)
	if err != nil {
		if errors.Is(err, domain.ErrExperimentNotFound) {
			return nil, nonRetryable(ErrTypeNotFound, err)
		}
		return nil, err
	}
	if experiment.OrganizationID != input.User.OrganizationID {
		return nil, nonRetryable(ErrTypeForbidden, fmt.Errorf("%w: experiment %s", domain.ErrForbidden, experiment.ID))
	}
	return experiment, nil
}

type GetLastMessageInput struct {
	ExperimentID uuid.UUID `json:"experiment_id"`
}

// GetLastMessage returns nil when the thread is empty.
func (a *Activities) GetLastMessage(ctx context.Context, input GetLastMessageInput) (*model.Message, error) {
	message, err := a.messages.FindLastByExperiment(ctx, input.ExperimentID)
	if err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return message, nil
}

type CreateMessageInput struct {
	Experiment model.Experiment `json:"experiment"`
	Content    string           `json:"content"`
	User       auth.User        `json:"user"`
}

// CreateMessage persists the human utterance with one pending reply per
// participant, created atomically with the message row.
func (a *Activities) CreateMessage(ctx context.Context, input CreateMessageInput) (*model.Message, error) {
	message := &model.Message{
		ExperimentID: input.Experiment.ID,
		Author:       input.User.Email,
		Content:      input.Content,
		Replies:      model.NewPendingReplies(input.Experiment.PersonaIDs),
	}
	if err := a.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	slog.Info("message persisted", "message_id", message.ID, "replies", len(message.Replies))
	return message, nil
}

type CreateInitialResponseInput struct {
	Content        string        `json:"content"`
	Persona        model.Persona `json:"persona"`
	Project        model.Project `json:"project"`
	ExperimentName string        `json:"experiment_name"`
}

// CreateInitialResponse opens the persona's conversational thread: the full
// instruction prompt rides along as system instructions on the first turn.
func (a *Activities) CreateInitialResponse(ctx context.Context, input CreateInitialResponseInput) (*inference.Response, error) {
	return a.inference.CreateResponse(ctx, inference.ResponseRequest{
		Model:        a.responseModel,
		Input:        input.Content,
		Instructions: inference.TemplateInstructionPrompt(input.Persona, input.Project, input.ExperimentName),
	})
}

type CreateFollowupResponseInput struct {
	Content            string `json:"content"`
	PreviousResponseID string `json:"previous_response_id"`
}

// CreateFollowupResponse continues the persona's thread by chaining onto its
// reply to the previous message.
func (a *Activities) CreateFollowupResponse(ctx context.Context, input CreateFollowupResponseInput) (*inference.Response, error) {
	return a.inference.CreateResponse(ctx, inference.ResponseRequest{
		Model:              a.responseModel,
		Input:              input.Content,
		PreviousResponseID: input.PreviousResponseID,
	})
}

type FinishReplyInput struct {
	MessageID uuid.UUID          `json:"message_id"`
	PersonaID uuid.UUID          `json:"persona_id"`
	Response  inference.Response `json:"response"`
}

func (a *Activities) FinishReply(ctx context.Context, input FinishReplyInput) error {
	_, err := a.messages.FinishReply(ctx, input.MessageID, input.PersonaID, input.Response.OutputText, input.Response.ID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvariantViolation) {
			return nonRetryable(ErrTypeInvariantViolation, err)
		}
		return err
	}
	slog.Info("reply finished", "message_id", input.MessageID, "persona_id", input.PersonaID)
	return nil
}
