package concierge

import "context"

// Message is one turn of a chat conversation
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Format selects the register of a creative writing request
type Format string

const (
	FormatBlog    Format = "blog"
	FormatEmail   Format = "email"
	FormatSummary Format = "summary"
	FormatPoem    Format = "poem"
)

// Generator is the generative backend behind the concierge. The only real
// implementation talks to the Gemini REST API.
//
//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_concierge
type Generator interface {
	// Chat continues a conversation and returns the model's reply
	Chat(ctx context.Context, history []Message, message string) (string, error)

	// AnalyzeImage describes a base64-encoded image, steered by prompt
	AnalyzeImage(ctx context.Context, data string, mimeType string, prompt string) (string, error)

	// GenerateText produces creative writing in the requested format
	GenerateText(ctx context.Context, prompt string, format Format) (string, error)
}
