package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used when none is configured
const DefaultModelName = "gemini-2.5-flash"

// ErrGeneratorUnavailable is returned when no advice backend is configured
var ErrGeneratorUnavailable = errors.New("advice generator unavailable")

// GeminiGenerator generates replies with the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini API client for the given key
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("NewGeminiGenerator: %w: missing API key", ErrGeneratorUnavailable)
	}
	if model == "" {
		model = DefaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiGenerator: create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends the context as the system instruction and the history plus
// query as the conversation contents
func (g *GeminiGenerator) Generate(ctx context.Context, systemContext string, history []domain.ChatMessage, query string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemContext}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, BuildContents(history, query), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}

// BuildContents converts the turn log plus the new query into Gemini contents
func BuildContents(history []domain.ChatMessage, query string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == domain.ChatRoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: query}},
	})
	return contents
}

// UnavailableGenerator always fails. It stands in when no API key is configured.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, string, []domain.ChatMessage, string) (string, error) {
	return "", ErrGeneratorUnavailable
}
