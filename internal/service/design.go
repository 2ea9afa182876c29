package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/linemk/siya-shop/internal/domain/models"
)

// ErrGenerationFailed is the one user-facing failure of the design flow.
// Upstream detail is logged, not surfaced; the user simply re-triggers.
var ErrGenerationFailed = errors.New("failed to generate design, please try again")

// DesignGenerator is the generative-design collaborator as the service
// sees it: two single-shot, stateless, possibly-failing remote calls.
type DesignGenerator interface {
	SuggestDesign(ctx context.Context, name, stylePrompt string) (*models.DesignSuggestion, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type DesignService interface {
	Suggest(ctx context.Context, name, stylePrompt string) (*models.DesignSuggestion, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type designService struct {
	log       *slog.Logger
	generator DesignGenerator
}

func NewDesignService(log *slog.Logger, generator DesignGenerator) DesignService {
	return &designService{log: log, generator: generator}
}

func (s *designService) Suggest(ctx context.Context, name, stylePrompt string) (*models.DesignSuggestion, error) {
	const op = "service.DesignService.Suggest"
	logger := s.log.With(slog.String("op", op))

	suggestion, err := s.generator.SuggestDesign(ctx, name, stylePrompt)
	if err != nil {
		logger.Error("design suggestion failed", slog.Any("error", err))
		return nil, ErrGenerationFailed
	}

	logger.Info("design suggestion generated", slog.String("fontFamily", suggestion.FontFamily))
	return suggestion, nil
}

func (s *designService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	const op = "service.DesignService.GenerateImage"
	logger := s.log.With(slog.String("op", op))

	image, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		logger.Error("image generation failed", slog.Any("error", err))
		return "", ErrGenerationFailed
	}

	logger.Info("image generated", slog.Int("payloadBytes", len(image)))
	return image, nil
}
