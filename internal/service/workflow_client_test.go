// internal/service/workflow_client_test.go
package service_test

import (
	"context"

	"go.temporal.io/sdk/client"
)

// fakeWorkflowRun satisfies just enough of client.WorkflowRun for the
// services, which only read the workflow id back.
type fakeWorkflowRun struct {
	id string
}

func (r *fakeWorkflowRun) GetID() string    { return r.id }
func (r *fakeWorkflowRun) GetRunID() string { return "run-" + r.id }

func (r *fakeWorkflowRun) Get(ctx context.Context, valuePtr interface{}) error {
	return nil
}

func (r *fakeWorkflowRun) GetWithOptions(ctx context.Context, valuePtr interface{}, options client.WorkflowRunGetOptions) error {
	return nil
}

// fakeWorkflowClient records the enqueue call so tests can assert on the
// workflow function and its arguments without a running server.
type fakeWorkflowClient struct {
	started  bool
	options  client.StartWorkflowOptions
	workflow interface{}
	args     []interface{}
	err      error
}

func (c *fakeWorkflowClient) ExecuteWorkflow(
	ctx context.Context,
	options client.StartWorkflowOptions,
	workflow interface{},
	args ...interface{},
) (client.WorkflowRun, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.started = true
	c.options = options
	c.workflow = workflow
	c.args = args
	return &fakeWorkflowRun{id: options.ID}, nil
}
