package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"jobfit-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client. Callers should Close it on shutdown.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) CompareResume(ctx context.Context, in llm.CompareInput) (json.RawMessage, error) {
	return c.generate(ctx, llm.BuildComparePrompt(in))
}

func (c *Client) ParseResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	return c.generate(ctx, llm.BuildParsePrompt(resumeText))
}

func (c *Client) generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	temp := float32(0)
	model.Temperature = &temp

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %v: %w", err, llm.ErrUnavailable)
	}
	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini response empty content")
	}
	return json.RawMessage(cleanJSONBlock(text)), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// cleanJSONBlock strips markdown code fences some models wrap around JSON
// even when a JSON response type is requested.
func cleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var _ llm.Client = (*Client)(nil)
