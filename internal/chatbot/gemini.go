package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrobert/agrobert-backend/pkg/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPromptTemplate = "You are AgriBERT, a helpful agricultural assistant. Answer questions related to farming, crop prices, weather, and market analysis in India. Please respond in this language: %s. Be concise and helpful."

// GeminiGenerator answers unmatched queries through the Gemini API. Each call
// seeds a one-turn history so the model knows its persona and target language.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator dials the Gemini API with the configured key.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Generate sends the query with the persona prompt and the language-matched
// greeting as priming history, and returns the model's text.
func (g *GeminiGenerator) Generate(ctx context.Context, query string, lang Language, greeting string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.SetTopP(1)
	model.SetTopK(1)
	model.SetMaxOutputTokens(2048)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	chat := model.StartChat()
	chat.History = []*genai.Content{
		{Role: "user", Parts: []genai.Part{genai.Text(fmt.Sprintf(systemPromptTemplate, lang))}},
		{Role: "model", Parts: []genai.Part{genai.Text(greeting)}},
	}

	resp, err := chat.SendMessage(ctx, genai.Text(query))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String(), nil
}
