// internal/service/experiment_test.go
package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/mocks"
	"github.com/joao-vitor-prudente/personia/internal/model"
	"github.com/joao-vitor-prudente/personia/internal/service"
	"github.com/joao-vitor-prudente/personia/internal/workflow"
)

type experimentMocks struct {
	repo       *mocks.MockExperimentRepositoryIface
	projects   *mocks.MockProjectRepositoryIface
	personas   *mocks.MockPersonaRepositoryIface
	assistants *mocks.MockAssistantRepositoryIface
	workflows  *fakeWorkflowClient
}

func newExperimentService(ctrl *gomock.Controller) (*service.ExperimentService, experimentMocks) {
	m := experimentMocks{
		repo:       mocks.NewMockExperimentRepositoryIface(ctrl),
		projects:   mocks.NewMockProjectRepositoryIface(ctrl),
		personas:   mocks.NewMockPersonaRepositoryIface(ctrl),
		assistants: mocks.NewMockAssistantRepositoryIface(ctrl),
		workflows:  &fakeWorkflowClient{},
	}
	svc := service.NewExperimentService(m.repo, m.projects, m.personas, m.assistants, m.workflows, "personia")
	return svc, m
}

func TestExperimentCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")
	personaID := uuid.New()
	projectID := uuid.New()

	t.Run("enqueues the workflow with the caller's identity", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		workflowID, err := svc.Create(context.Background(), identity, service.CreateExperimentInput{
			Name:       "Focus Group 1",
			PersonaIDs: []uuid.UUID{personaID},
			ProjectID:  projectID,
		})

		assert.NoError(t, err)
		assert.True(t, m.workflows.started)
		assert.Equal(t, m.workflows.options.ID, workflowID)
		assert.True(t, strings.HasPrefix(workflowID, "create-experiment-"))
		assert.Equal(t, "personia", m.workflows.options.TaskQueue)

		input, ok := m.workflows.args[0].(workflow.CreateExperimentWorkflowInput)
		assert.True(t, ok)
		assert.Equal(t, "Focus Group 1", input.Name)
		assert.Equal(t, []uuid.UUID{personaID}, input.PersonaIDs)
		assert.Equal(t, projectID, input.ProjectID)
		assert.Equal(t, "ana@example.com", input.User.Email)
		assert.Equal(t, "org_1", input.User.OrganizationID)
	})

	t.Run("rejects an empty participant set without enqueueing", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		_, err := svc.Create(context.Background(), identity, service.CreateExperimentInput{
			Name:       "Focus Group 1",
			PersonaIDs: nil,
			ProjectID:  projectID,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.False(t, m.workflows.started)
	})
}

func TestExperimentGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")
	personaID := uuid.New()
	experiment := &model.Experiment{
		ID:             uuid.New(),
		OrganizationID: "org_1",
		Name:           "Focus Group 1",
		PersonaIDs:     model.UUIDList{personaID},
	}

	t.Run("resolves participants", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), experiment.ID).Return(experiment, nil)
		m.personas.EXPECT().
			FindAllByIDs(gomock.Any(), []uuid.UUID(experiment.PersonaIDs)).
			Return([]model.Persona{{ID: personaID, OrganizationID: "org_1"}}, nil)

		got, err := svc.Get(context.Background(), identity, experiment.ID)
		assert.NoError(t, err)
		assert.Equal(t, experiment.ID, got.ID)
		assert.Len(t, got.Personas, 1)
	})

	t.Run("other organization is forbidden", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		foreign := &model.Experiment{ID: uuid.New(), OrganizationID: "org_2"}
		m.repo.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil)

		_, err := svc.Get(context.Background(), identity, foreign.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestExperimentEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")
	experiment := &model.Experiment{
		ID:             uuid.New(),
		OrganizationID: "org_1",
		Name:           "Focus Group 1",
		PersonaIDs:     model.UUIDList{uuid.New()},
	}

	t.Run("replaces name and participants", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		newPersona := uuid.New()
		m.repo.EXPECT().FindByID(gomock.Any(), experiment.ID).Return(experiment, nil)
		m.personas.EXPECT().
			FindAllByIDs(gomock.Any(), []uuid.UUID{newPersona}).
			Return([]model.Persona{{ID: newPersona, OrganizationID: "org_1"}}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, updated *model.Experiment) error {
				assert.Equal(t, "Focus Group 2", updated.Name)
				assert.Equal(t, model.UUIDList{newPersona}, updated.PersonaIDs)
				return nil
			})

		err := svc.Edit(context.Background(), identity, experiment.ID, service.EditExperimentInput{
			Name:       "Focus Group 2",
			PersonaIDs: []uuid.UUID{newPersona},
		})
		assert.NoError(t, err)
	})

	t.Run("cross-tenant participant is forbidden", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		foreignPersona := uuid.New()
		m.repo.EXPECT().FindByID(gomock.Any(), experiment.ID).Return(experiment, nil)
		m.personas.EXPECT().
			FindAllByIDs(gomock.Any(), []uuid.UUID{foreignPersona}).
			Return([]model.Persona{{ID: foreignPersona, OrganizationID: "org_2"}}, nil)

		err := svc.Edit(context.Background(), identity, experiment.ID, service.EditExperimentInput{
			Name:       "Focus Group 2",
			PersonaIDs: []uuid.UUID{foreignPersona},
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestExperimentListByProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")
	projectID := uuid.New()
	personaID := uuid.New()
	experiment := model.Experiment{
		ID:             uuid.New(),
		OrganizationID: "org_1",
		ProjectID:      projectID,
		PersonaIDs:     model.UUIDList{personaID},
	}

	t.Run("resolves personas and assistants per experiment", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.projects.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(&model.Project{ID: projectID, OrganizationID: "org_1"}, nil)
		m.repo.EXPECT().
			FindByProject(gomock.Any(), projectID).
			Return([]model.Experiment{experiment}, nil)
		m.personas.EXPECT().
			FindAllByIDs(gomock.Any(), []uuid.UUID(experiment.PersonaIDs)).
			Return([]model.Persona{{ID: personaID, OrganizationID: "org_1"}}, nil)
		m.assistants.EXPECT().
			FindByExperiment(gomock.Any(), experiment.ID).
			Return([]model.Assistant{{ID: uuid.New(), ExperimentID: experiment.ID, PersonaID: personaID, Status: model.AssistantFinished}}, nil)

		listings, err := svc.ListByProject(context.Background(), identity, projectID)
		assert.NoError(t, err)
		assert.Len(t, listings, 1)
		assert.Len(t, listings[0].Personas, 1)
		assert.Len(t, listings[0].Assistants, 1)
	})

	t.Run("foreign project is forbidden", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.projects.EXPECT().
			FindByID(gomock.Any(), projectID).
			Return(&model.Project{ID: projectID, OrganizationID: "org_2"}, nil)

		_, err := svc.ListByProject(context.Background(), identity, projectID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
