package concierge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/services/concierge"
	mock_concierge "github.com/fintechx/casino/pkg/services/concierge/mock"
)

func TestChatForwardsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock_concierge.NewMockGenerator(ctrl)
	service := concierge.NewService(generator)

	history := []concierge.Message{
		{Role: "user", Text: "Hola"},
		{Role: "model", Text: "Bienvenido al casino."},
	}
	generator.EXPECT().
		Chat(gomock.Any(), history, "¿Qué juegos hay?").
		Return("Tenemos diez juegos.", nil)

	reply, err := service.Chat(context.Background(), history, "¿Qué juegos hay?")
	require.NoError(t, err)
	assert.Equal(t, "Tenemos diez juegos.", reply)
}

func TestChatEmptyMessageRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := concierge.NewService(mock_concierge.NewMockGenerator(ctrl))

	_, err := service.Chat(context.Background(), nil, "")
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))
}

func TestChatBackendFailureSurfacesAsExternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock_concierge.NewMockGenerator(ctrl)
	service := concierge.NewService(generator)

	backendErr := errors.New("connection reset")
	generator.EXPECT().
		Chat(gomock.Any(), gomock.Any(), "hola").
		Return("", backendErr)

	_, err := service.Chat(context.Background(), nil, "hola")
	assert.True(t, types.IsGameError(err, types.ErrExternalService))
	assert.ErrorIs(t, err, backendErr)
}

func TestAnalyzeImageDefaultsPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock_concierge.NewMockGenerator(ctrl)
	service := concierge.NewService(generator)

	generator.EXPECT().
		AnalyzeImage(gomock.Any(), "YWJj", "image/png", "Describe this image in detail.").
		Return("A slot machine.", nil)

	result, err := service.AnalyzeImage(context.Background(), "YWJj", "image/png", "")
	require.NoError(t, err)
	assert.Equal(t, "A slot machine.", result)
}

func TestAnalyzeImageRequiresData(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := concierge.NewService(mock_concierge.NewMockGenerator(ctrl))

	_, err := service.AnalyzeImage(context.Background(), "", "image/png", "")
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))

	_, err = service.AnalyzeImage(context.Background(), "YWJj", "", "")
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))
}

func TestCreativeWritingValidatesFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock_concierge.NewMockGenerator(ctrl)
	service := concierge.NewService(generator)

	_, err := service.CreativeWriting(context.Background(), "write about luck", concierge.Format("novel"))
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))

	_, err = service.CreativeWriting(context.Background(), "", concierge.FormatPoem)
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))

	generator.EXPECT().
		GenerateText(gomock.Any(), "write about luck", concierge.FormatPoem).
		Return("Fortuna...", nil)

	text, err := service.CreativeWriting(context.Background(), "write about luck", concierge.FormatPoem)
	require.NoError(t, err)
	assert.Equal(t, "Fortuna...", text)
}
