package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/fetcharr/config"
)

// Pipeline runs the whole aggregation: genre resolution once, then every
// configured category in order, collecting partial failures.
type Pipeline struct {
	api    API
	cfg    *config.Config
	logger zerolog.Logger
}

// NewPipeline creates a pipeline over the given API and configuration.
func NewPipeline(api API, cfg *config.Config, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		api:    api,
		cfg:    cfg,
		logger: logger,
	}
}

// Run produces the output document. Genre resolution failure is fatal and
// nothing is attempted after it. Category failures are logged and counted
// but do not stop the run; only when every category fails does Run return
// an error. Successful categories keep their configured relative order.
func (p *Pipeline) Run(ctx context.Context) (*Document, error) {
	genres, err := p.api.ResolveGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("genre resolution failed: %w", err)
	}

	processor := NewProcessor(p.api, genres, p.cfg.TMDB.FetchCredits, p.cfg.TMDB.Concurrency, p.logger)

	var outputs []CategoryOutput
	failed := 0

	for _, cat := range p.cfg.Categories {
		output, err := processor.Process(ctx, cat)
		if err != nil {
			p.logger.Error().Err(err).Str("category", cat.Name).Msg("Category failed")
			failed++
			continue
		}
		outputs = append(outputs, output)
	}

	if failed > 0 {
		p.logger.Warn().Int("failed", failed).Msg("Some categories failed")
	}

	if len(outputs) == 0 {
		return nil, ErrNoCategories
	}

	return &Document{Categories: outputs}, nil
}
