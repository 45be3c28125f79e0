package concierge

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/fintechx/casino/internal/types"
)

const defaultImagePrompt = "Describe this image in detail."

// Service fronts the generative backend for the concierge screens. It
// never touches balances; a backend failure surfaces as an external
// service error and the casino keeps running.
type Service struct {
	generator Generator
}

// NewService creates a new concierge service
func NewService(generator Generator) *Service {
	return &Service{
		generator: generator,
	}
}

// Chat continues a conversation with the concierge
func (s *Service) Chat(ctx context.Context, history []Message, message string) (string, error) {
	if message == "" {
		return "", types.NewGameError(types.ErrInvalidSelection, "concierge: message is required")
	}

	reply, err := s.generator.Chat(ctx, history, message)
	if err != nil {
		log.WithError(err).Warn("concierge chat failed")
		return "", types.WrapError(types.ErrExternalService, "concierge chat unavailable", err)
	}
	return reply, nil
}

// AnalyzeImage runs the document check on an uploaded image
func (s *Service) AnalyzeImage(ctx context.Context, data string, mimeType string, prompt string) (string, error) {
	if data == "" || mimeType == "" {
		return "", types.NewGameError(types.ErrInvalidSelection, "concierge: image data and mime type are required")
	}
	if prompt == "" {
		prompt = defaultImagePrompt
	}

	result, err := s.generator.AnalyzeImage(ctx, data, mimeType, prompt)
	if err != nil {
		log.WithError(err).Warn("concierge image analysis failed")
		return "", types.WrapError(types.ErrExternalService, "concierge image analysis unavailable", err)
	}
	return result, nil
}

// CreativeWriting produces text in one of the supported formats
func (s *Service) CreativeWriting(ctx context.Context, prompt string, format Format) (string, error) {
	if prompt == "" {
		return "", types.NewGameError(types.ErrInvalidSelection, "concierge: prompt is required")
	}
	switch format {
	case FormatBlog, FormatEmail, FormatSummary, FormatPoem:
	default:
		return "", types.NewGameError(types.ErrInvalidSelection, "concierge: unknown writing format")
	}

	text, err := s.generator.GenerateText(ctx, prompt, format)
	if err != nil {
		log.WithError(err).Warn("concierge creative writing failed")
		return "", types.WrapError(types.ErrExternalService, "concierge writing unavailable", err)
	}
	return text, nil
}
