package concierge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.5-flash"

	chatTemperature     = 0.7
	creativeTemperature = 0.8
)

// GeminiClient implements Generator against the Gemini REST API
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// NewGeminiClient creates a Gemini-backed generator
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    geminiBaseURL,
		model:      geminiModel,
		apiKey:     apiKey,
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Chat continues a conversation and returns the model's reply
func (c *GeminiClient) Chat(ctx context.Context, history []Message, message string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	return c.generate(ctx, &geminiRequest{
		Contents:         contents,
		GenerationConfig: &geminiGenerationConfig{Temperature: chatTemperature},
	})
}

// AnalyzeImage describes a base64-encoded image, steered by prompt
func (c *GeminiClient) AnalyzeImage(ctx context.Context, data string, mimeType string, prompt string) (string, error) {
	return c.generate(ctx, &geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: data}},
				{Text: prompt},
			},
		}},
	})
}

// GenerateText produces creative writing in the requested format
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, format Format) (string, error) {
	instruction := fmt.Sprintf("You are an expert writer specialized in %s. Format your response beautifully using Markdown.", format)

	return c.generate(ctx, &geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instruction}}},
		GenerationConfig:  &geminiGenerationConfig{Temperature: creativeTemperature},
	})
}

func (c *GeminiClient) generate(ctx context.Context, request *geminiRequest) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("model error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	var text strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
