package agent

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps a generative model configured with the planner tool
// declarations and the system prompt.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName, systemPrompt string, tools []*genai.Tool) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.Tools = tools
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}
	return &GeminiClient{model: model}, nil
}

// StartChat opens a chat session seeded with prior conversation turns.
func (g *GeminiClient) StartChat(history []*genai.Content) *genai.ChatSession {
	cs := g.model.StartChat()
	cs.History = history
	return cs
}
