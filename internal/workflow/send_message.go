// internal/workflow/send_message.go
package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/inference"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

type SendMessageWorkflowInput struct {
	ExperimentID uuid.UUID `json:"experiment_id"`
	Content      string    `json:"content"`
	User         auth.User `json:"user"`
}

// SendMessage drives one turn of the group chat: persist the human message
// with a pending reply per persona, then fan out one inference call per
// persona and finish each reply as its response lands. The previous turn
// must be fully finished before a new one starts; a single persona's failure
// leaves its reply pending, which deliberately blocks the thread until that
// step is retried.
func SendMessage(ctx workflow.Context, input SendMessageWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("starting message turn", "experiment_id", input.ExperimentID)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	})

	var a *Activities

	var experiment *model.Experiment
	err := workflow.ExecuteActivity(ctx, a.GetExperiment, GetExperimentInput{
		ExperimentID: input.ExperimentID,
		User:         input.User,
	}).Get(ctx, &experiment)
	if err != nil {
		return err
	}

	projectFut := workflow.ExecuteActivity(ctx, a.GetProject, GetProjectInput{
		ID:   experiment.ProjectID,
		User: input.User,
	})
	lastMessageFut := workflow.ExecuteActivity(ctx, a.GetLastMessage, GetLastMessageInput{
		ExperimentID: experiment.ID,
	})
	personasFut := workflow.ExecuteActivity(ctx, a.GetPersonas, GetPersonasInput{
		IDs:  experiment.PersonaIDs,
		User: input.User,
	})

	var project *model.Project
	if err := projectFut.Get(ctx, &project); err != nil {
		return err
	}
	var lastMessage *model.Message
	if err := lastMessageFut.Get(ctx, &lastMessage); err != nil {
		return err
	}
	var personas []model.Persona
	if err := personasFut.Get(ctx, &personas); err != nil {
		return err
	}

	if lastMessage != nil && lastMessage.HasPendingReplies() {
		return temporal.NewNonRetryableApplicationError(
			domain.ErrConflictingReply.Error(), ErrTypeConflictingReply, domain.ErrConflictingReply)
	}

	var message *model.Message
	err = workflow.ExecuteActivity(ctx, a.CreateMessage, CreateMessageInput{
		Experiment: *experiment,
		Content:    input.Content,
		User:       input.User,
	}).Get(ctx, &message)
	if err != nil {
		return err
	}

	return fanOutReplies(ctx, message, lastMessage, personas, project, experiment, input.Content)
}

// fanOutReplies issues one inference call per persona and finishes the
// matching reply as each response lands. A persona that answered the
// previous message chains onto that reply; a persona with no reply there,
// either because the thread is empty or because it was added to the
// experiment after that message, opens a fresh thread with the full
// instruction prompt.
func fanOutReplies(
	ctx workflow.Context,
	message *model.Message,
	lastMessage *model.Message,
	personas []model.Persona,
	project *model.Project,
	experiment *model.Experiment,
	content string,
) error {
	logger := workflow.GetLogger(ctx)
	var a *Activities

	fresh := personas
	var continuing []model.PersonaReply
	if lastMessage != nil {
		var err error
		continuing, fresh, err = model.PartitionPersonasByPreviousReply(lastMessage, personas)
		if err != nil {
			return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvariantViolation, err)
		}
	}

	wg := workflow.NewWaitGroup(ctx)
	errs := make([]error, 0, len(personas))
	finish := func(gctx workflow.Context, personaID uuid.UUID, response *inference.Response, err error) {
		if err == nil {
			err = workflow.ExecuteActivity(gctx, a.FinishReply, FinishReplyInput{
				MessageID: message.ID,
				PersonaID: personaID,
				Response:  *response,
			}).Get(gctx, nil)
		}
		if err != nil {
			logger.Error("reply failed", "persona_id", personaID, "error", err)
			errs = append(errs, fmt.Errorf("persona %s: %w", personaID, err))
		}
	}

	for _, persona := range fresh {
		persona := persona
		wg.Add(1)
		workflow.Go(ctx, func(gctx workflow.Context) {
			defer wg.Done()

			var response *inference.Response
			err := workflow.ExecuteActivity(gctx, a.CreateInitialResponse, CreateInitialResponseInput{
				Content:        content,
				Persona:        persona,
				Project:        *project,
				ExperimentName: experiment.Name,
			}).Get(gctx, &response)
			finish(gctx, persona.ID, response, err)
		})
	}
	for _, pair := range continuing {
		pair := pair
		wg.Add(1)
		workflow.Go(ctx, func(gctx workflow.Context) {
			defer wg.Done()

			var response *inference.Response
			err := workflow.ExecuteActivity(gctx, a.CreateFollowupResponse, CreateFollowupResponseInput{
				Content:            content,
				PreviousResponseID: pair.Reply.OpenaiReplyID,
			}).Get(gctx, &response)
			finish(gctx, pair.Persona.ID, response, err)
		})
	}
	wg.Wait(ctx)

	if len(errs) > 0 {
		return fmt.Errorf("collecting replies: %w", errs[0])
	}
	return nil
}
