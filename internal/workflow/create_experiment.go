// internal/workflow/create_experiment.go
package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/inference"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

type CreateExperimentWorkflowInput struct {
	Name       string      `json:"name"`
	PersonaIDs []uuid.UUID `json:"persona_ids"`
	ProjectID  uuid.UUID   `json:"project_id"`
	User       auth.User   `json:"user"`
}

// CreateExperiment validates the referenced personas and project, persists
// the experiment, and provisions one assistant identity per persona. Nothing
// is persisted until validation passes; after the experiment row exists,
// each persona's provisioning runs as its own retryable sequence so one
// failure leaves the others' progress durable.
func CreateExperiment(ctx workflow.Context, input CreateExperimentWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("starting experiment creation", "name", input.Name, "personas", len(input.PersonaIDs))

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	})

	var a *Activities

	var personas []model.Persona
	err := workflow.ExecuteActivity(ctx, a.GetPersonas, GetPersonasInput{
		IDs:  input.PersonaIDs,
		User: input.User,
	}).Get(ctx, &personas)
	if err != nil {
		return err
	}

	var project *model.Project
	err = workflow.ExecuteActivity(ctx, a.GetProject, GetProjectInput{
		ID:   input.ProjectID,
		User: input.User,
	}).Get(ctx, &project)
	if err != nil {
		return err
	}

	var experiment *model.Experiment
	err = workflow.ExecuteActivity(ctx, a.CreateExperiment, CreateExperimentInput{
		Name:       input.Name,
		PersonaIDs: input.PersonaIDs,
		ProjectID:  input.ProjectID,
		User:       input.User,
	}).Get(ctx, &experiment)
	if err != nil {
		return err
	}

	stub := inference.ExperimentStub{ID: experiment.ID, Name: experiment.Name}

	// One provisioning sequence per persona, in parallel. Completion order
	// does not matter; each sequence writes only its own assistant row.
	wg := workflow.NewWaitGroup(ctx)
	errs := make([]error, 0, len(personas))
	for _, persona := range personas {
		persona := persona
		wg.Add(1)
		workflow.Go(ctx, func(gctx workflow.Context) {
			defer wg.Done()
			if err := provisionPersonaAssistant(gctx, experiment, project, persona, stub); err != nil {
				logger.Error("assistant provisioning failed", "persona_id", persona.ID, "error", err)
				errs = append(errs, fmt.Errorf("persona %s: %w", persona.ID, err))
			}
		})
	}
	wg.Wait(ctx)

	if len(errs) > 0 {
		return fmt.Errorf("provisioning assistants: %w", errs[0])
	}

	logger.Info("experiment created", "experiment_id", experiment.ID)
	return nil
}

// provisionPersonaAssistant is the per-persona step sequence: make the
// pending row durable, call the provider, patch the row finished. Splitting
// the billable call away from both writes keeps a crash between any two
// steps recoverable without a duplicate identity.
func provisionPersonaAssistant(
	ctx workflow.Context,
	experiment *model.Experiment,
	project *model.Project,
	persona model.Persona,
	stub inference.ExperimentStub,
) error {
	var a *Activities

	var assistant *model.Assistant
	err := workflow.ExecuteActivity(ctx, a.CreatePendingAssistant, CreatePendingAssistantInput{
		ExperimentID: experiment.ID,
		ProjectID:    project.ID,
		PersonaID:    persona.ID,
	}).Get(ctx, &assistant)
	if err != nil {
		return err
	}

	var provisioned *ProvisionAssistantOutput
	err = workflow.ExecuteActivity(ctx, a.ProvisionAssistant, ProvisionAssistantInput{
		Persona:    persona,
		Project:    *project,
		Experiment: stub,
	}).Get(ctx, &provisioned)
	if err != nil {
		return err
	}

	return workflow.ExecuteActivity(ctx, a.FinishAssistant, FinishAssistantInput{
		AssistantID:       assistant.ID,
		OpenaiAssistantID: provisioned.OpenaiAssistantID,
	}).Get(ctx, nil)
}
