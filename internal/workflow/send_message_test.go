// internal/workflow/send_message_test.go
package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/joao-vitor-prudente/personia/internal/inference"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

func TestSendMessageWorkflow(t *testing.T) {
	user := testUser()
	persona := model.Persona{ID: uuid.New(), OrganizationID: "org_1", Name: "Ana Souza", Nickname: "Ana"}
	project := &model.Project{ID: uuid.New(), OrganizationID: "org_1", Name: "Spring Launch"}
	experiment := &model.Experiment{
		ID:             uuid.New(),
		OrganizationID: "org_1",
		Name:           "Focus Group 1",
		ProjectID:      project.ID,
		PersonaIDs:     model.UUIDList{persona.ID},
	}
	input := SendMessageWorkflowInput{
		ExperimentID: experiment.ID,
		Content:      "What do you think of the new line?",
		User:         user,
	}

	newMessage := func() *model.Message {
		return &model.Message{
			ID:           uuid.New(),
			ExperimentID: experiment.ID,
			Author:       user.Email,
			Content:      input.Content,
			Replies:      model.NewPendingReplies([]uuid.UUID{persona.ID}),
		}
	}
	finishedMessage := func(replyID string) *model.Message {
		at := time.Now()
		return &model.Message{
			ID:           uuid.New(),
			ExperimentID: experiment.ID,
			Author:       user.Email,
			Content:      "previous question",
			Replies: model.Replies{{
				AuthorID:      persona.ID,
				Status:        model.ReplyFinished,
				Content:       "previous answer",
				OpenaiReplyID: replyID,
				FinishedAt:    &at,
			}},
		}
	}

	a := &Activities{}

	t.Run("first turn seeds each persona's thread", func(t *testing.T) {
		suite := &testsuite.WorkflowTestSuite{}
		env := suite.NewTestWorkflowEnvironment()

		message := newMessage()
		env.OnActivity(a.GetExperiment, mock.Anything, mock.Anything).Return(experiment, nil)
		env.OnActivity(a.GetProject, mock.Anything, mock.Anything).Return(project, nil)
		env.OnActivity(a.GetLastMessage, mock.Anything, mock.Anything).Return(nil, nil)
		env.OnActivity(a.GetPersonas, mock.Anything, mock.Anything).Return([]model.Persona{persona}, nil)
		env.OnActivity(a.CreateMessage, mock.Anything, mock.Anything).Return(message, nil)
		env.OnActivity(a.CreateInitialResponse, mock.Anything, mock.Anything).Return(
			func(ctx context.Context, in CreateInitialResponseInput) (*inference.Response, error) {
				assert.Equal(t, input.Content, in.Content)
				assert.Equal(t, persona.ID, in.Persona.ID)
				assert.Equal(t, experiment.Name, in.ExperimentName)
				return &inference.Response{ID: "resp_1", OutputText: "I like it"}, nil
			})
		env.OnActivity(a.FinishReply, mock.Anything, mock.Anything).Return(
			func(ctx context.Context, in FinishReplyInput) error {
				assert.Equal(t, message.ID, in.MessageID)
				assert.Equal(t, persona.ID, in.PersonaID)
				assert.Equal(t, "resp_1", in.Response.ID)
				return nil
			})

		env.ExecuteWorkflow(SendMessage, input)

		assert.True(t, env.IsWorkflowCompleted())
		assert.NoError(t, env.GetWorkflowError())
		env.AssertNotCalled(t, "CreateFollowupResponse", mock.Anything, mock.Anything)
	})

	t.Run("followup turn chains onto the previous reply", func(t *testing.T) {
		suite := &testsuite.WorkflowTestSuite{}
		env := suite.NewTestWorkflowEnvironment()

		message := newMessage()
		env.OnActivity(a.GetExperiment, mock.Anything, mock.Anything).Return(experiment, nil)
		env.OnActivity(a.GetProject, mock.Anything, mock.Anything).Return(project, nil)
		env.OnActivity(a.GetLastMessage, mock.Anything, mock.Anything).Return(finishedMessage("resp_prev"), nil)
		env.OnActivity(a.GetPersonas, mock.Anything, mock.Anything).Return([]model.Persona{persona}, nil)
		env.OnActivity(a.CreateMessage, mock.Anything, mock.Anything).Return(message, nil)
		env.OnActivity(a.CreateFollowupResponse, mock.Anything, mock.Anything).Return(
			func(ctx context.Context, in CreateFollowupResponseInput) (*inference.Response, error) {
				assert.Equal(t, "resp_prev", in.PreviousResponseID)
				return &inference.Response{ID: "resp_2", OutputText: "Still good"}, nil
			})
		env.OnActivity(a.FinishReply, mock.Anything, mock.Anything).Return(nil)

		env.ExecuteWorkflow(SendMessage, input)

		assert.True(t, env.IsWorkflowCompleted())
		assert.NoError(t, env.GetWorkflowError())
		env.AssertNotCalled(t, "CreateInitialResponse", mock.Anything, mock.Anything)
	})

	t.Run("persona added after the previous turn starts a fresh thread", func(t *testing.T) {
		suite := &testsuite.WorkflowTestSuite{}
		env := suite.NewTestWorkflowEnvironment()

		newcomer := model.Persona{ID: uuid.New(), OrganizationID: "org_1", Name: "Bruno Lima", Nickname: "Bruno"}
		edited := &model.Experiment{
			ID:             experiment.ID,
			OrganizationID: "org_1",
			Name:           experiment.Name,
			ProjectID:      project.ID,
			PersonaIDs:     model.UUIDList{persona.ID, newcomer.ID},
		}
		message := &model.Message{
			ID:           uuid.New(),
			ExperimentID: experiment.ID,
			Author:       user.Email,
			Content:      input.Content,
			Replies:      model.NewPendingReplies([]uuid.UUID{persona.ID, newcomer.ID}),
		}
		env.OnActivity(a.GetExperiment, mock.Anything, mock.Anything).Return(edited, nil)
		env.OnActivity(a.GetProject, mock.Anything, mock.Anything).Return(project, nil)
		env.OnActivity(a.GetLastMessage, mock.Anything, mock.Anything).Return(finishedMessage("resp_prev"), nil)
		env.OnActivity(a.GetPersonas, mock.Anything, mock.Anything).Return([]model.Persona{persona, newcomer}, nil)
		env.OnActivity(a.CreateMessage, mock.Anything, mock.Anything).Return(message, nil)
		env.OnActivity(a.CreateFollowupResponse, mock.Anything, mock.Anything).Return(
			func(ctx context.Context, in CreateFollowupResponseInput) (*inference.Response, error) {
				assert.Equal(t, "resp_prev", in.PreviousResponseID)
				return &inference.Response{ID: "resp_2", OutputText: "Still good"}, nil
			})
		env.OnActivity(a.CreateInitialResponse, mock.Anything, mock.Anything).Return(
			func(ctx context.Context, in CreateInitialResponseInput) (*inference.Response, error) {
				assert.Equal(t, newcomer.ID, in.Persona.ID)
				return &inference.Response{ID: "resp_3", OutputText: "Glad to join"}, nil
			})
		env.OnActivity(a.FinishReply, mock.Anything, mock.Anything).Return(nil)

		env.ExecuteWorkflow(SendMessage, input)

		assert.True(t, env.IsWorkflowCompleted())
		assert.NoError(t, env.GetWorkflowError())
		env.AssertNumberOfCalls(t, "CreateFollowupResponse", 1)
		env.AssertNumberOfCalls(t, "CreateInitialResponse", 1)
		env.AssertNumberOfCalls(t, "FinishReply", 2)
	})

	t.Run("pending replies abort the turn before persisting", func(t *testing.T) {
		suite := &testsuite.WorkflowTestSuite{}
		env := suite.NewTestWorkflowEnvironment()

		blocked := newMessage()
		env.OnActivity(a.GetExperiment, mock.Anything, mock.Anything).Return(experiment, nil)
		env.OnActivity(a.GetProject, mock.Anything, mock.Anything).Return(project, nil)
		env.OnActivity(a.GetLastMessage, mock.Anything, mock.Anything).Return(blocked, nil)
		env.OnActivity(a.GetPersonas, mock.Anything, mock.Anything).Return([]model.Persona{persona}, nil)

		env.ExecuteWorkflow(SendMessage, input)

		assert.True(t, env.IsWorkflowCompleted())
		err := env.GetWorkflowError()
		assert.Error(t, err)

		var appErr *temporal.ApplicationError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, ErrTypeConflictingReply, appErr.Type())
		env.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	})

	t.Run("failed inference leaves the reply pending", func(t *testing.T) {
		suite := &testsuite.WorkflowTestSuite{}
		env := suite.NewTestWorkflowEnvironment()

		message := newMessage()
		env.OnActivity(a.GetExperiment, mock.Anything, mock.Anything).Return(experiment, nil)
		env.OnActivity(a.GetProject, mock.Anything, mock.Anything).Return(project, nil)
		env.OnActivity(a.GetLastMessage, mock.Anything, mock.Anything).Return(nil, nil)
		env.OnActivity(a.GetPersonas, mock.Anything, mock.Anything).Return([]model.Persona{persona}, nil)
		env.OnActivity(a.CreateMessage, mock.Anything, mock.Anything).Return(message, nil)
		env.OnActivity(a.CreateInitialResponse, mock.Anything, mock.Anything).Return(
			nil, temporal.NewNonRetryableApplicationError("provider rejected the request", "Provider", nil))

		env.ExecuteWorkflow(SendMessage, input)

		assert.True(t, env.IsWorkflowCompleted())
		assert.Error(t, env.GetWorkflowError())
		env.AssertNotCalled(t, "FinishReply", mock.Anything, mock.Anything)
	})
}
