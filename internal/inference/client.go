// internal/inference/client.go

// Package inference wraps the generative-text provider behind a small
// interface: creating a hosted assistant identity, and creating responses
// that either open a fresh conversational thread or continue one by
// reference to a previous response.
package inference

import "context"

//go:generate mockgen -source=./client.go -destination=../mocks/mock_inference_client.go -package=mocks Client

type AssistantSpec struct {
	Name         string
	Description  string
	Instructions string
	Model        string
}

type Assistant struct {
	ID string
}

type ResponseRequest struct {
	Model string
	Input string
	// Instructions is set on the first turn only; it seeds the persona's
	// thread with the full prompt template.
	Instructions string
	// PreviousResponseID chains a follow-up turn onto the persona's thread.
	PreviousResponseID string
}

type Response struct {
	ID         string
	OutputText string
}

type Client interface {
	CreateAssistant(ctx context.Context, spec AssistantSpec) (*Assistant, error)
	CreateResponse(ctx context.Context, req ResponseRequest) (*Response, error)
}
