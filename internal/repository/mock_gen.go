// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./project.go -destination=../mocks/mock_project_repository.go -package=mocks ProjectRepositoryIface
//go:generate mockgen -source=./persona.go -destination=../mocks/mock_persona_repository.go -package=mocks PersonaRepositoryIface
//go:generate mockgen -source=./experiment.go -destination=../mocks/mock_experiment_repository.go -package=mocks ExperimentRepositoryIface
//go:generate mockgen -source=./assistant.go -destination=../mocks/mock_assistant_repository.go -package=mocks AssistantRepositoryIface
//go:generate mockgen -source=./message.go -destination=../mocks/mock_message_repository.go -package=mocks MessageRepositoryIface
