// internal/service/experiment.go
package service

import (
	"context"
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

type ExperimentService struct {
	repo       repository.ExperimentRepositoryIface
	projects   repository.ProjectRepositoryIface
	personas   repository.PersonaRepositoryIface
	assistants repository.AssistantRepositoryIface
	workflows  WorkflowClient
	taskQueue  string
	validate   *validator.Validate
}

func NewExperimentService(
	repo repository.ExperimentRepositoryIface,
	projects repository.ProjectRepositoryIface,
	personas repository.PersonaRepositoryIface,
	assistants repository.AssistantRepositoryIface,
	workflows WorkflowClient,
	taskQueue string,
) *ExperimentService {
	return &ExperimentService{
		repo:       repo,
		projects:   projects,
		personas:   personas,
		assistants: assistants,
		workflows:  workflows,
		taskQueue:  taskQueue,
		validate:   validator.New(),
	}
}

type CreateExperimentInput struct {
	Name       string      `json:"name" validate:"required"`
	PersonaIDs []uuid.UUID `json:"persona_ids" validate:"required,min=1"`
	ProjectID  uuid.UUID   `json:"project_id" validate:"required"`
}

// Create enqueues the CreateExperiment workflow and returns its id. The
// experiment row, assistants and first-turn readiness are established by the
// workflow, never by a direct mutation; the workflow carries the caller's
// identity explicitly because its steps run outside this request.
func (s *ExperimentService) Create(ctx context.Context, identity *auth.Identity, input CreateExperimentInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	options := client.StartWorkflowOptions{
		ID:        "create-experiment-" + uuid.NewString(),
		TaskQueue: s.taskQueue,
	}
	run, err := s.workflows.ExecuteWorkflow(ctx, options, workflow.CreateExperiment, workflow.CreateExperimentWorkflowInput{
		Name:       input.Name,
		PersonaIDs: input.PersonaIDs,
		ProjectID:  input.ProjectID,
		User:       identity.User(),
	})
	if err != nil {
		return "", fmt.Errorf("starting create-experiment workflow: %w", err)
	}
	return run.GetID(), nil
}

type ExperimentWithPersonas struct {
	model.Experiment
	Personas []model.Persona `json:"personas"`
}

func (s *ExperimentService) Get(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*ExperimentWithPersonas, error) {
	experiment, err := s.getOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	personas, err := s.personas.FindAllByIDs(ctx, experiment.PersonaIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving personas: %w", err)
	}
	return &ExperimentWithPersonas{Experiment: *experiment, Personas: personas}, nil
}

type EditExperimentInput struct {
	Name       string      `json:"name" validate:"required"`
	PersonaIDs []uuid.UUID `json:"persona_ids" validate:"required,min=1"`
}

// Edit replaces the name and participant set. Assistants are not
// re-provisioned; personas added here converse through fresh threads on
// their first turn.
func (s *ExperimentService) Edit(ctx context.Context, identity *auth.Identity, id uuid.UUID, input EditExperimentInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	experiment, err := s.getOwned(ctx, identity, id)
	if err != nil {
		return err
	}

	personas, err := s.personas.FindAllByIDs(ctx, input.PersonaIDs)
	if err != nil {
		return err
	}
	for _, persona := range personas {
		if persona.OrganizationID != identity.Organization.ID {
			return domain.ErrForbidden
		}
	}

	experiment.Name = input.Name
	experiment.PersonaIDs = model.UUIDList(input.PersonaIDs)
	if err := s.repo.Update(ctx, experiment); err != nil {
		return fmt.Errorf("updating experiment: %w", err)
	}
	return nil
}

// Delete removes the experiment row only; messages and assistants are left
// for out-of-band cleanup.
func (s *ExperimentService) Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, identity, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting experiment: %w", err)
	}
	return nil
}

type ExperimentListing struct {
	model.Experiment
	Personas   []model.Persona   `json:"personas"`
	Assistants []model.Assistant `json:"assistants"`
}

// ListByProject resolves each experiment's personas and assistant rows, so
// a consumer can show provisioning progress alongside the participant set.
func (s *ExperimentService) ListByProject(ctx context.Context, identity *auth.Identity, projectID uuid.UUID) ([]ExperimentListing, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != identity.Organization.ID {
		return nil, domain.ErrForbidden
	}

	experiments, err := s.repo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing experiments: %w", err)
	}

	listings := make([]ExperimentListing, 0, len(experiments))
	for _, experiment := range experiments {
		personas, err := s.personas.FindAllByIDs(ctx, experiment.PersonaIDs)
		if err != nil {
			return nil, fmt.Errorf("resolving personas: %w", err)
		}
		assistants, err := s.assistants.FindByExperiment(ctx, experiment.ID)
		if err != nil {
			return nil, fmt.Errorf("resolving assistants: %w", err)
		}
		listings = append(listings, ExperimentListing{
			Experiment: experiment,
			Personas:   personas,
			Assistants: assistants,
		})
	}
	return listings, nil
}

func (s *ExperimentService) getOwned(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*model.Experiment, error) {
	experiment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if experiment.OrganizationID != identity.Organization.ID {
		return nil, domain.ErrForbidden
	}
	return experiment, nil
}
