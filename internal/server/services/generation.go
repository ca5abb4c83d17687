package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/generator"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/prompt"
)

// GenerationService builds the prompt, calls the generation service and
// records the result in the owner's history.
type GenerationService struct {
	generator generator.Generator
	history   *HistoryService
	timeout   time.Duration
	logger    logging.Logger
}

func NewGenerationService(g generator.Generator, h *HistoryService, timeout time.Duration, logger logging.Logger) *GenerationService {
	return &GenerationService{
		generator: g,
		history:   h,
		timeout:   timeout,
		logger:    logger.With("module", "generation"),
	}
}

// Generate runs one generation for ownerEmail. The external call is bounded
// by the configured timeout; any failure there is reported as
// common.ErrInfrastructure and nothing is recorded.
func (s *GenerationService) Generate(ctx context.Context, ownerEmail string, req dto.GenerationRequest) (*models.Generation, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := prompt.Build(req.Title, req.Idea, req.Language)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	text, err := s.generator.Generate(callCtx, p)
	if err != nil {
		s.logger.Error(ctx, "generation failed", "error", err, "elapsed", time.Since(started))
		return nil, fmt.Errorf("%w: %v", common.ErrInfrastructure, err)
	}
	s.logger.Info(ctx, "generation complete", "language", req.Language, "chars", len(text), "elapsed", time.Since(started))

	return s.history.Record(ctx, ownerEmail, req.Title, req.Language, text)
}
