// internal/repository/persona.go
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

type PersonaRepositoryIface interface {
	Create(ctx context.Context, persona *model.Persona) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Persona, error)
	FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Persona, error)
	FindByOrganization(ctx context.Context, organizationID string, sorting string) ([]model.Persona, error)
	Update(ctx context.Context, persona *model.Persona) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PersonaRepository struct {
	db *gorm.DB
}

func NewPersonaRepository(db *gorm.DB) *PersonaRepository {
	return &PersonaRepository{db: db}
}

func (r *PersonaRepository) Create(ctx context.Context, persona *model.Persona) error {
	result := r.db.WithContext(ctx).Create(persona)
	if result.Error != nil {
		return fmt.Errorf("failed to create persona: %w", result.Error)
	}
	return nil
}

func (r *PersonaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Persona, error) {
	var persona model.Persona
	result := r.db.WithContext(ctx).First(&persona, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonaNotFound
		}
		return nil, fmt.Errorf("failed to find persona: %w", result.Error)
	}
	return &persona, nil
}

// FindAllByIDs is the bulk fetch-many-or-fail accessor: it fails with
// domain.ErrPersonaNotFound if any requested id is missing, and returns the
// personas in the order the ids were given.
func (r *PersonaRepository) FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Persona, error) {
	var personas []model.Persona
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&personas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find personas: %w", result.Error)
	}

	byID := make(map[uuid.UUID]model.Persona, len(personas))
	for _, persona := range personas {
		byID[persona.ID] = persona
	}

	ordered := make([]model.Persona, 0, len(ids))
	for _, id := range ids {
		persona, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrPersonaNotFound, id)
		}
		ordered = append(ordered, persona)
	}
	return ordered, nil
}

func (r *PersonaRepository) FindByOrganization(ctx context.Context, organizationID string, sorting string) ([]model.Persona, error) {
	var personas []model.Persona
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at " + orderDirection(sorting)).
		Find(&personas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find personas: %w", result.Error)
	}
	return personas, nil
}

func (r *PersonaRepository) Update(ctx context.Context, persona *model.Persona) error {
	result := r.db.WithContext(ctx).Save(persona)
	if result.Error != nil {
		return fmt.Errorf("failed to update persona: %w", result.Error)
	}
	return nil
}

func (r *PersonaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Persona{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete persona: %w", result.Error)
	}
	return nil
}
