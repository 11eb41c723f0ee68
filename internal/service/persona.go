// internal/service/persona.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/model"
	"github.com/joao-vitor-prudente/personia/internal/repository"
)

type PersonaService struct {
	repo     repository.PersonaRepositoryIface
	validate *validator.Validate
}

func NewPersonaService(repo repository.PersonaRepositoryIface) *PersonaService {
	return &PersonaService{
		repo:     repo,
		validate: validator.New(),
	}
}

type PersonaInput struct {
	Name               string                   `json:"name" validate:"required"`
	Nickname           string                   `json:"nickname" validate:"required"`
	Quote              string                   `json:"quote" validate:"required"`
	Background         string                   `json:"background" validate:"required"`
	DemographicProfile model.DemographicProfile `json:"demographic_profile" validate:"required"`
}

func (s *PersonaService) Create(ctx context.Context, identity *auth.Identity, input PersonaInput) (*model.Persona, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	persona := &model.Persona{
		OrganizationID:     identity.Organization.ID,
		Name:               input.Name,
		Nickname:           input.Nickname,
		Quote:              input.Quote,
		Background:         input.Background,
		DemographicProfile: input.DemographicProfile,
	}
	if err := s.repo.Create(ctx, persona); err != nil {
		return nil, fmt.Errorf("creating persona: %w", err)
	}
	return persona, nil
}

// List filters on name or nickname, case-insensitively.
func (s *PersonaService) List(ctx context.Context, identity *auth.Identity, search, sorting string) ([]model.Persona, error) {
	personas, err := s.repo.FindByOrganization(ctx, identity.Organization.ID, sorting)
	if err != nil {
		return nil, fmt.Errorf("listing personas: %w", err)
	}
	if search == "" {
		return personas, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]model.Persona, 0, len(personas))
	for _, persona := range personas {
		if strings.Contains(strings.ToLower(persona.Name), needle) ||
			strings.Contains(strings.ToLower(persona.Nickname), needle) {
			filtered = append(filtered, persona)
		}
	}
	return filtered, nil
}

func (s *PersonaService) Get(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*model.Persona, error) {
	return s.getOwned(ctx, identity, id)
}

func (s *PersonaService) Edit(ctx context.Context, identity *auth.Identity, id uuid.UUID, input PersonaInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	persona, err := s.getOwned(ctx, identity, id)
	if err != nil {
		return err
	}

	persona.Name = input.Name
	persona.Nickname = input.Nickname
	persona.Quote = input.Quote
	persona.Background = input.Background
	persona.DemographicProfile = input.DemographicProfile
	if err := s.repo.Update(ctx, persona); err != nil {
		return fmt.Errorf("updating persona: %w", err)
	}
	return nil
}

func (s *PersonaService) Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, identity, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting persona: %w", err)
	}
	return nil
}

func (s *PersonaService) getOwned(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*model.Persona, error) {
	persona, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if persona.OrganizationID != identity.Organization.ID {
		return nil, domain.ErrForbidden
	}
	return persona, nil
}
