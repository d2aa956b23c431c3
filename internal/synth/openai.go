package synth

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are a professional financial market analyst writing a daily market summary for retail investors. Be factual and specific: quote exact numbers from the data you are given and never invent figures. Follow the section structure in the user's instructions exactly.`

// OpenAIClient implements Synthesizer over the OpenAI chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

// NewOpenAIClient creates a client for the given API key and model name.
// An empty model name selects gpt-4o-mini.
func NewOpenAIClient(apiKey, modelName string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModel(modelName),
		modelName: modelName,
	}
}

func (c *OpenAIClient) Name() string { return "openai/" + c.modelName }

// Synthesize sends the prompt and returns the raw response text.
func (c *OpenAIClient) Synthesize(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}
