// internal/repository/experiment.go
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

type ExperimentRepositoryIface interface {
	Create(ctx context.Context, experiment *model.Experiment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Experiment, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]model.Experiment, error)
	Update(ctx context.Context, experiment *model.Experiment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExperimentRepository struct {
	db *gorm.DB
}

func NewExperimentRepository(db *gorm.DB) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

func (r *ExperimentRepository) Create(ctx context.Context, experiment *model.Experiment) error {
	result := r.db.WithContext(ctx).Create(experiment)
	if result.Error != nil {
		return fmt.Errorf("failed to create experiment: %w", result.Error)
	}
	return nil
}

func (r *ExperimentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Experiment, error) {
	var experiment model.Experiment
	result := r.db.WithContext(ctx).First(&experiment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExperimentNotFound
		}
		return nil, fmt.Errorf("failed to find experiment: %w", result.Error)
	}
	return &experiment, nil
}

func (r *ExperimentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]model.Experiment, error) {
	var experiments []model.Experiment
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at desc").
		Find(&experiments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find experiments: %w", result.Error)
	}
	return experiments, nil
}

func (r *ExperimentRepository) Update(ctx context.Context, experiment *model.Experiment) error {
	result := r.db.WithContext(ctx).Save(experiment)
	if result.Error != nil {
		return fmt.Errorf("failed to update experiment: %w", result.Error)
	}
	return nil
}

func (r *ExperimentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Experiment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete experiment: %w", result.Error)
	}
	return nil
}
