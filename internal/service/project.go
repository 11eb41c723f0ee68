// internal/service/project.go
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

type ProjectService struct {
	repo     repository.ProjectRepositoryIface
	validate *validator.Validate
}

func NewProjectService(repo repository.ProjectRepositoryIface) *ProjectService {
	return &ProjectService{
		repo:     repo,
		validate: validator.New(),
	}
}

type ProjectInput struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Objective      string `json:"objective" validate:"required"`
	Situation      string `json:"situation" validate:"required"`
	TargetAudience string `json:"target_audience" validate:"required"`
}

func (s *ProjectService) Create(ctx context.Context, identity *auth.Identity, input ProjectInput) (*model.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	project := &model.Project{
		OrganizationID: identity.Organization.ID,
		Name:           input.Name,
		Category:       input.Category,
		Objective:      input.Objective,
		Situation:      input.Situation,
		TargetAudience: input.TargetAudience,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return project, nil
}

// List returns the organization's projects, newest first by default,
// filtered by a case-insensitive name search.
func (s *ProjectService) List(ctx context.Context, identity *auth.Identity, search, sorting string) ([]model.Project, error) {
	projects, err := s.repo.FindByOrganization(ctx, identity.Organization.ID, sorting)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if search == "" {
		return projects, nil
	}

	filtered := make([]model.Project, 0, len(projects))
	for _, project := range projects {
		if strings.Contains(strings.ToLower(project.Name), strings.ToLower(search)) {
			filtered = append(filtered, project)
		}
	}
	return filtered, nil
}

func (s *ProjectService) Get(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*model.Project, error) {
	return s.getOwned(ctx, identity, id)
}

func (s *ProjectService) Edit(ctx context.Context, identity *auth.Identity, id uuid.UUID, input ProjectInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	project, err := s.getOwned(ctx, identity, id)
	if err != nil {
		return err
	}

	project.Name = input.Name
	project.Category = input.Category
	project.Objective = input.Objective
	project.Situation = input.Situation
	project.TargetAudience = input.TargetAudience
	if err := s.repo.Update(ctx, project); err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, identity, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// getOwned fetches the project and re-checks tenant ownership. The check
// runs on every access path, not once per session.
func (s *ProjectService) getOwned(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.OrganizationID != identity.Organization.ID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}
