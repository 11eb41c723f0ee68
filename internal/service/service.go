// internal/service/service.go

// Package service implements the authorization-checked operation surface.
// Every operation receives the caller's resolved identity explicitly and
// re-checks tenant ownership at the boundary; nothing is cached between
// calls. Experiment creation and message sending do not mutate directly:
// they enqueue durable workflows and return the workflow handle.
package service

import (
	"context"

	"go.temporal.io/sdk/client"
)

// WorkflowClient is the slice of the Temporal client the services need.
type WorkflowClient interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}
