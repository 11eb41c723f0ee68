// internal/inference/openai.go
package inference

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements Client on the official OpenAI SDK. Assistant
// identities use the beta Assistants API; turns use the Responses API with
// previous_response_id chaining.
type OpenAIClient struct {
	client openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

func (c *OpenAIClient) CreateAssistant(ctx context.Context, spec AssistantSpec) (*Assistant, error) {
	assistant, err := c.client.Beta.Assistants.New(ctx, openai.BetaAssistantNewParams{
		Model:        shared.ChatModel(spec.Model),
		Name:         openai.String(spec.Name),
		Description:  openai.String(spec.Description),
		Instructions: openai.String(spec.Instructions),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}
	return &Assistant{ID: assistant.ID}, nil
}

func (c *OpenAIClient) CreateResponse(ctx context.Context, req ResponseRequest) (*Response, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(req.Model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Input)},
	}
	if req.Instructions != "" {
		params.Instructions = openai.String(req.Instructions)
	}
	if req.PreviousResponseID != "" {
		params.PreviousResponseID = openai.String(req.PreviousResponseID)
	}

	response, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create response: %w", err)
	}
	return &Response{ID: response.ID, OutputText: response.OutputText()}, nil
}
