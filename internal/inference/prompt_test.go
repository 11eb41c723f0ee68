// internal/inference/prompt_test.go
package inference_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/joao-vitor-prudente/personia/internal/inference"
	"github.com/joao-vitor-prudente/personia/internal/model"
)

func promptFixtures() (model.Persona, model.Project, inference.ExperimentStub) {
	persona := model.Persona{
		ID:         uuid.New(),
		Name:       "Ana Souza",
		Nickname:   "Ana",
		Quote:      "Quality over quantity.",
		Background: "Grew up in a small town, now works in retail.",
		DemographicProfile: model.DemographicProfile{
			Age:        34,
			Gender:     model.GenderFemale,
			Occupation: "Store manager",
			Country:    "Brazil",
			State:      "SP",
		},
	}
	project := model.Project{
		ID:             uuid.New(),
		Name:           "Spring Launch",
		Category:       "retail",
		Objective:      "Gauge reception of the new product line",
		Situation:      "Competitor launched a similar line last month",
		TargetAudience: "Urban professionals aged 25-40",
	}
	experiment := inference.ExperimentStub{ID: uuid.New(), Name: "Focus Group 1"}
	return persona, project, experiment
}

func TestTemplateAssistantName(t *testing.T) {
	persona, project, experiment := promptFixtures()

	name := inference.TemplateAssistantName(persona, project, experiment)

	assert.Equal(t, "Ana Souza on Spring Launch on Focus Group 1", name)
}

func TestTemplateAssistantDescription(t *testing.T) {
	persona, project, experiment := promptFixtures()

	description := inference.TemplateAssistantDescription(persona, project, experiment)

	assert.Contains(t, description, "Ana Souza persona")
	assert.Contains(t, description, "Spring Launch project")
	assert.Contains(t, description, "Focus Group 1 experiment")
}

func TestTemplateInstructionPrompt(t *testing.T) {
	persona, project, experiment := promptFixtures()

	prompt := inference.TemplateInstructionPrompt(persona, project, experiment.Name)

	assert.Contains(t, prompt, persona.Name)
	assert.Contains(t, prompt, `"`+persona.Nickname+`"`)
	assert.Contains(t, prompt, persona.Quote)
	assert.Contains(t, prompt, persona.Background)
	assert.Contains(t, prompt, "Age: 34")
	assert.Contains(t, prompt, "Gender: female")
	assert.Contains(t, prompt, persona.DemographicProfile.Occupation)
	assert.Contains(t, prompt, "Brazil, SP")
	assert.Contains(t, prompt, project.Name)
	assert.Contains(t, prompt, project.Category)
	assert.Contains(t, prompt, project.Objective)
	assert.Contains(t, prompt, project.Situation)
	assert.Contains(t, prompt, project.TargetAudience)
	assert.Contains(t, prompt, experiment.Name)
	assert.Contains(t, prompt, "Do not reveal that you are an AI.")
}

func TestTemplateAssistantInstructionsMatchesInstructionPrompt(t *testing.T) {
	persona, project, experiment := promptFixtures()

	instructions := inference.TemplateAssistantInstructions(persona, project, experiment)
	prompt := inference.TemplateInstructionPrompt(persona, project, experiment.Name)

	assert.Equal(t, prompt, instructions)
}
