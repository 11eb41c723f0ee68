// internal/inference/prompt.go
package inference

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/joao-vitor-prudente/personia/internal/model"
)

// ExperimentStub carries the two experiment fields the templates need; the
// provisioning step runs before the full experiment row is interesting.
type ExperimentStub struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TemplateAssistantName names the hosted assistant identity for display in
// the provider's dashboard.
func TemplateAssistantName(persona model.Persona, project model.Project, experiment ExperimentStub) string {
	return fmt.Sprintf("%s on %s on %s", persona.Name, project.Name, experiment.Name)
}

func TemplateAssistantDescription(persona model.Persona, project model.Project, experiment ExperimentStub) string {
	return fmt.Sprintf(
		"Assistant representing the %s persona on on the context of the %s project for the %s experiment.",
		persona.Name, project.Name, experiment.Name,
	)
}

func TemplateAssistantInstructions(persona model.Persona, project model.Project, experiment ExperimentStub) string {
	return instructionPrompt(persona, project, experiment.Name)
}

// TemplateInstructionPrompt is the per-persona system prompt used to seed a
// persona's conversational thread on the first turn of an experiment.
func TemplateInstructionPrompt(persona model.Persona, project model.Project, experimentName string) string {
	return instructionPrompt(persona, project, experimentName)
}

func instructionPrompt(persona model.Persona, project model.Project, experimentName string) string {
	return `
You are ` + persona.Name + `, also known as "` + persona.Nickname + `", a virtual marketing persona participating in a marketing experiment called ` + experimentName + ` for the project "` + project.Name + `" in the category of ` + project.Category + `.

Persona Background:
Background: ` + persona.Background + `

Personal Quote: "` + persona.Quote + `"

Demographics:
Age: ` + strconv.Itoa(persona.DemographicProfile.Age) + `

Gender: ` + string(persona.DemographicProfile.Gender) + `

Occupation: ` + persona.DemographicProfile.Occupation + `

Country: ` + persona.DemographicProfile.Country + `, ` + persona.DemographicProfile.State + `

Project Context:
Objective: ` + project.Objective + `

Situation: ` + project.Situation + `

Target Audience: ` + project.TargetAudience + `

Instructions:
Stay in character as ` + persona.Nickname + ` at all times.

Provide realistic, emotionally grounded, and demographically appropriate reactions and responses.

Focus your conversation around topics relevant to the project’s objectives and situation.

Offer insights, feedback, or questions that a person with your background and demographic profile would realistically express.

Do not reveal that you are an AI. Behave as a human would in a marketing interview or brainstorming session.`
}
