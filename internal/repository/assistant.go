// internal/repository/assistant.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

type AssistantRepositoryIface interface {
	CreatePending(ctx context.Context, experimentID, projectID, personaID uuid.UUID) (*model.Assistant, error)
	MarkFinished(ctx context.Context, id uuid.UUID, openaiAssistantID string) error
	FindByExperiment(ctx context.Context, experimentID uuid.UUID) ([]model.Assistant, error)
	FindByExperimentAndPersona(ctx context.Context, experimentID, personaID uuid.UUID) (*model.Assistant, error)
}

type AssistantRepository struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) *AssistantRepository {
	return &AssistantRepository{db: db}
}

// CreatePending inserts the pending row for an (experiment, persona) pair,
// or returns the existing row if one is already there. The unique index on
// the pair plus this get-or-create shape keeps retried provisioning steps
// from ever minting a second row.
func (r *AssistantRepository) CreatePending(ctx context.Context, experimentID, projectID, personaID uuid.UUID) (*model.Assistant, error) {
	assistant := model.Assistant{
		ExperimentID: experimentID,
		ProjectID:    projectID,
		PersonaID:    personaID,
		Status:       model.AssistantPending,
	}
	result := r.db.WithContext(ctx).
		Where("experiment_id = ? AND persona_id = ?", experimentID, personaID).
		FirstOrCreate(&assistant)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", result.Error)
	}
	return &assistant, nil
}

// MarkFinished transitions the row to finished exactly once. Finishing a row
// that already holds the same provider identity is a no-op so a retried step
// converges instead of failing.
func (r *AssistantRepository) MarkFinished(ctx context.Context, id uuid.UUID, openaiAssistantID string) error {
	var assistant model.Assistant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.First(&assistant, "id = ?", id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domain.ErrAssistantNotFound
			}
			return fmt.Errorf("failed to find assistant: %w", result.Error)
		}

		if assistant.Finished() {
			if assistant.OpenaiAssistantID == openaiAssistantID {
				return nil
			}
			return fmt.Errorf("%w: assistant %s already finished with a different identity", domain.ErrInvariantViolation, id)
		}

		updates := map[string]interface{}{
			"status":              model.AssistantFinished,
			"openai_assistant_id": openaiAssistantID,
		}
		if err := tx.Model(&assistant).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to finish assistant: %w", err)
		}
		return nil
	})
	return err
}

func (r *AssistantRepository) FindByExperiment(ctx context.Context, experimentID uuid.UUID) ([]model.Assistant, error) {
	var assistants []model.Assistant
	result := r.db.WithContext(ctx).
		Where("experiment_id = ?", experimentID).
		Find(&assistants)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find assistants: %w", result.Error)
	}
	return assistants, nil
}

func (r *AssistantRepository) FindByExperimentAndPersona(ctx context.Context, experimentID, personaID uuid.UUID) (*model.Assistant, error) {
	var assistant model.Assistant
	result := r.db.WithContext(ctx).
		First(&assistant, "experiment_id = ? AND persona_id = ?", experimentID, personaID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssistantNotFound
		}
		return nil, fmt.Errorf("failed to find assistant: %w", result.Error)
	}
	return &assistant, nil
}
