package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/streamhound/discovery/internal/domain/intent"
)

const intentSystemPrompt = `You are a media search intent parser.
Extract structured information from user queries about movies and TV shows.
Focus on mood, themes, references to other content, and filters.
Return valid JSON matching the specified schema.
Be conservative with confidence scores - only give high scores when intent is very clear.`

const intentPromptTemplate = `Analyze this media search query and extract structured information:

Query: %q

Extract:
1. Mood/Vibes: emotional tone (e.g., "dark", "uplifting", "tense")
2. Themes: main subjects (e.g., "heist", "romance", "sci-fi")
3. References: "similar to X" or "like Y" mentions
4. Filters: platform, genre, year constraints
5. Confidence: 0.0-1.0 score for extraction quality

Return JSON:
{
  "mood": ["mood1", "mood2"],
  "themes": ["theme1", "theme2"],
  "references": ["title1", "title2"],
  "filters": {
    "genre": ["genre1"],
    "platform": ["platform1"],
    "year_range": {"min": 2020, "max": 2024}
  },
  "fallback_query": "simplified query string",
  "confidence": 0.85
}`

// IntentExtractor extracts structured search intent via a chat-completion
// model. Any transport or validation failure is surfaced to the caller; the
// intent usecase absorbs it with its deterministic fallback.
type IntentExtractor struct {
	client      *openai.Client
	model       string
	temperature float32
}

// IntentConfig holds the intent extraction settings.
type IntentConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Temperature    float32
	RequestTimeout time.Duration
}

// NewIntentExtractor creates a chat-completion intent extractor.
func NewIntentExtractor(cfg *IntentConfig) *IntentExtractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = 0.3
	}

	return &IntentExtractor{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: temperature,
	}
}

// intentDTO mirrors the JSON schema the model is instructed to return.
type intentDTO struct {
	Mood       []string `json:"mood"`
	Themes     []string `json:"themes"`
	References []string `json:"references"`
	Filters    struct {
		Genre     []string `json:"genre"`
		Platform  []string `json:"platform"`
		YearRange *struct {
			Min int `json:"min"`
			Max int `json:"max"`
		} `json:"year_range"`
	} `json:"filters"`
	FallbackQuery string  `json:"fallback_query"`
	Confidence    float64 `json:"confidence"`
}

// Extract asks the model for a structured intent and validates it strictly.
// Malformed JSON or an out-of-range confidence fails this path.
func (e *IntentExtractor) Extract(ctx context.Context, query string) (intent.Parsed, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: e.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: intentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(intentPromptTemplate, query)},
		},
	})
	if err != nil {
		return intent.Parsed{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return intent.Parsed{}, fmt.Errorf("empty completion response")
	}

	return decodeIntent([]byte(resp.Choices[0].Message.Content), query)
}

// decodeIntent parses the model output into a validated intent. The original
// query backs an empty fallback_query so the invariant "always populated"
// holds even for sloppy model output.
func decodeIntent(raw []byte, query string) (intent.Parsed, error) {
	var dto intentDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return intent.Parsed{}, fmt.Errorf("decode intent: %w", err)
	}

	filters := intent.Filters{
		Genres:    dto.Filters.Genre,
		Platforms: dto.Filters.Platform,
	}
	if dto.Filters.YearRange != nil {
		filters.YearRange = &intent.YearRange{
			Min: dto.Filters.YearRange.Min,
			Max: dto.Filters.YearRange.Max,
		}
	}

	fallbackQuery := dto.FallbackQuery
	if fallbackQuery == "" {
		fallbackQuery = query
	}

	parsed, err := intent.New(
		dto.Mood, dto.Themes, dto.References,
		filters, fallbackQuery, dto.Confidence,
	)
	if err != nil {
		return intent.Parsed{}, fmt.Errorf("validate intent: %w", err)
	}
	return parsed, nil
}
