package gateways

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompleter is the alternative completion provider, selected with
// LLM_PROVIDER=gemini. Model identifiers are Gemini model names
// (e.g. gemini-2.0-flash) instead of OpenRouter ones.
type GeminiCompleter struct {
	apiKey string
}

func NewGeminiCompleter(apiKey string) *GeminiCompleter {
	return &GeminiCompleter{apiKey: apiKey}
}

func (g *GeminiCompleter) Complete(ctx context.Context, prompt, model string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	resp, err := client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
