// Package ai wraps the Gemini API for the two model-backed features: text
// enhancement for resume copy and structured extraction from uploaded PDFs.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/resumehub/resume-builder/internal/types"
)

// defaultModel is the Gemini model used for both features.
const defaultModel = "gemini-1.5-flash"

// Client is an abstraction over the model provider.
type Client interface {
	// EnhanceText returns a polished suggestion for free-form resume text.
	EnhanceText(ctx context.Context, prompt string) (string, error)
	// ExtractResume parses an uploaded PDF into a resume document. The bool
	// reports whether the canned sample was substituted because the model
	// output failed to parse.
	ExtractResume(ctx context.Context, pdf []byte) (*types.ResumeData, bool, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: defaultModel}, nil
}

// EnhanceText returns a polished suggestion for free-form resume text.
func (c *GeminiClient) EnhanceText(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(enhancePrompt(prompt)))
	if err != nil {
		return "", fmt.Errorf("failed to generate suggestion: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ExtractResume parses an uploaded PDF into a resume document. If the model
// output cannot be parsed as a valid document, the canned sample is returned
// instead of an error.
func (c *GeminiClient) ExtractResume(ctx context.Context, pdf []byte) (*types.ResumeData, bool, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "application/pdf", Data: pdf},
		genai.Text(extractPrompt()),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to extract resume: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, false, err
	}

	data, err := ParseResumeJSON(text)
	if err != nil {
		// Malformed model output is recovered locally with sample data.
		sample := SampleResumeData()
		return &sample, true, nil
	}
	return data, false, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// extractTextFromResponse pulls the first text part out of a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content in model response")
	}
	return b.String(), nil
}
