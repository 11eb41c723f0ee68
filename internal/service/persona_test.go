// internal/service/persona_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/joao-vitor-prudente/personia/internal/domain"
	"github.com/joao-vitor-prudente/personia/internal/mocks"
	"github.com/joao-vitor-prudente/personia/internal/model"
	"github.com/joao-vitor-prudente/personia/internal/service"
)

func validPersonaInput() service.PersonaInput {
	return service.PersonaInput{
		Name:       "Ana Souza",
		Nickname:   "Ana",
		Quote:      "Quality over quantity.",
		Background: "Works in retail, two kids.",
		DemographicProfile: model.DemographicProfile{
			Age:        34,
			Gender:     model.GenderFemale,
			Occupation: "Store manager",
			Country:    "Brazil",
			State:      "SP",
		},
	}
}

func TestPersonaCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")

	t.Run("stamps the caller's organization", func(t *testing.T) {
		repo := mocks.NewMockPersonaRepositoryIface(ctrl)
		svc := service.NewPersonaService(repo)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, persona *model.Persona) error {
				assert.Equal(t, "org_1", persona.OrganizationID)
				assert.Equal(t, 34, persona.DemographicProfile.Age)
				return nil
			})

		persona, err := svc.Create(context.Background(), identity, validPersonaInput())
		assert.NoError(t, err)
		assert.Equal(t, "Ana Souza", persona.Name)
	})

	t.Run("rejects an unknown gender", func(t *testing.T) {
		repo := mocks.NewMockPersonaRepositoryIface(ctrl)
		svc := service.NewPersonaService(repo)

		input := validPersonaInput()
		input.DemographicProfile.Gender = "other"

		_, err := svc.Create(context.Background(), identity, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a non-positive age", func(t *testing.T) {
		repo := mocks.NewMockPersonaRepositoryIface(ctrl)
		svc := service.NewPersonaService(repo)

		input := validPersonaInput()
		input.DemographicProfile.Age = 0

		_, err := svc.Create(context.Background(), identity, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestPersonaList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")
	personas := []model.Persona{
		{ID: uuid.New(), OrganizationID: "org_1", Name: "Ana Souza", Nickname: "Ana"},
		{ID: uuid.New(), OrganizationID: "org_1", Name: "Bruno Lima", Nickname: "Bru"},
	}

	t.Run("search matches name or nickname", func(t *testing.T) {
		repo := mocks.NewMockPersonaRepositoryIface(ctrl)
		svc := service.NewPersonaService(repo)

		repo.EXPECT().
			FindByOrganization(gomock.Any(), "org_1", "").
			Return(personas, nil)

		found, err := svc.List(context.Background(), identity, "bru", "")
		assert.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, "Bruno Lima", found[0].Name)
	})
}

func TestPersonaTenantIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := testIdentity("org_1")
	foreign := &model.Persona{ID: uuid.New(), OrganizationID: "org_2", Name: "Not Yours"}

	repo := mocks.NewMockPersonaRepositoryIface(ctrl)
	svc := service.NewPersonaService(repo)

	repo.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	_, err := svc.Get(context.Background(), identity, foreign.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
