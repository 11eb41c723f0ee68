// internal/workflow/worker.go
package workflow

import (
	"go.temporal.io/sdk/worker"
)

// Register attaches the workflows and their activities to a worker.
func Register(w worker.Worker, activities *Activities) {
	w.RegisterWorkflow(CreateExperiment)
	w.RegisterWorkflow(SendMessage)
	w.RegisterActivity(activities)
}
