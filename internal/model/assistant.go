// internal/model/assistant.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AssistantStatus string

const (
	AssistantPending  AssistantStatus = "pending"
	AssistantFinished AssistantStatus = "finished"
)

// Assistant is the externally-hosted conversational identity backing one
// persona inside one experiment. The row is inserted pending before the
// provider call and patched finished exactly once afterwards; it never
// reverts.
type Assistant struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExperimentID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_assistants_experiment_persona" json:"experiment_id"`
	ProjectID         uuid.UUID       `gorm:"type:uuid;not null" json:"project_id"`
	PersonaID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_assistants_experiment_persona" json:"persona_id"`
	Status            AssistantStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	OpenaiAssistantID string          `gorm:"type:text" json:"openai_assistant_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (a *Assistant) Finished() bool {
	return a.Status == AssistantFinished
}
