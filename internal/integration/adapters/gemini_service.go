// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/wealthflow/backend/internal/application/adapter"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements the TranscriptionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Transcribe extracts a single transaction from a spoken note.
func (s *GeminiService) Transcribe(ctx context.Context, request *adapter.TranscriptionRequest) (*adapter.TranscriptionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for structured JSON output
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = transcriptionSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	result, err := parseTranscription(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// transcriptionSchema describes the object the model must return.
func transcriptionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":      {Type: genai.TypeNumber},
			"category":    {Type: genai.TypeString},
			"accountName": {Type: genai.TypeString},
			"type":        {Type: genai.TypeString, Enum: []string{"expense", "income"}},
			"merchant":    {Type: genai.TypeString},
		},
		Required: []string{"amount", "type"},
	}
}

// buildPrompt creates the prompt for Gemini.
func buildPrompt(request *adapter.TranscriptionRequest) string {
	var sb strings.Builder

	sb.WriteString("Analyze this note and extract transaction data.\n")
	sb.WriteString(fmt.Sprintf("Note: %q\n", request.Text))
	sb.WriteString(fmt.Sprintf("Available Accounts: %s\n", strings.Join(request.AccountNames, ", ")))

	if len(request.CategoryNames) > 0 {
		sb.WriteString(fmt.Sprintf("Categories: %s, Other\n", strings.Join(request.CategoryNames, ", ")))
	} else {
		sb.WriteString("Categories: Other\n")
	}

	sb.WriteString(`
Rules:
- amount is a positive number without currency symbols
- type is "income" only for money received, otherwise "expense"
- accountName must be one of the available accounts when the note names one
- merchant is the shop or person, if mentioned

Return JSON.`)

	return sb.String()
}

// responseText returns the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && string(text) != "" {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}

// geminiTranscription represents the raw response from Gemini.
type geminiTranscription struct {
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	AccountName string      `json:"accountName"`
	Type        string      `json:"type"`
	Merchant    string      `json:"merchant"`
}

// parseTranscription parses the model's JSON text into a TranscriptionResult.
func parseTranscription(textContent string) (*adapter.TranscriptionResult, error) {
	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiTranscription
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	amount := decimal.Zero
	if raw.Amount != "" {
		parsed, err := decimal.NewFromString(raw.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", raw.Amount, err)
		}
		amount = parsed
	}

	return &adapter.TranscriptionResult{
		Amount:      amount,
		Type:        raw.Type,
		Category:    raw.Category,
		AccountName: raw.AccountName,
		Merchant:    raw.Merchant,
	}, nil
}
