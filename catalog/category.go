package catalog

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/fetcharr/config"
	"github.com/s0up4200/fetcharr/tmdb"
)

// DefaultConcurrency bounds parallel credits fetches within a category.
const DefaultConcurrency = 5

// Processor turns one configured category into a CategoryOutput.
type Processor struct {
	api          API
	genres       tmdb.GenreLookup
	fetchCredits bool
	concurrency  int
	logger       zerolog.Logger
}

// NewProcessor creates a category processor sharing the run-wide genre lookup.
func NewProcessor(api API, genres tmdb.GenreLookup, fetchCredits bool, concurrency int, logger zerolog.Logger) *Processor {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Processor{
		api:          api,
		genres:       genres,
		fetchCredits: fetchCredits,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Process fetches a category's listing, truncates it to the configured
// limit and normalizes every retained record. A listing fetch or decode
// failure aborts the whole category; per-item credits failures degrade to
// items without cast or directors.
func (p *Processor) Process(ctx context.Context, cat config.CategoryConfig) (CategoryOutput, error) {
	p.logger.Info().Str("category", cat.Name).Msg("Fetching category")

	params := url.Values{}
	for _, param := range cat.Params {
		params.Add(param.Key, param.Value)
	}

	records, err := p.api.GetListing(ctx, cat.Endpoint, params)
	if err != nil {
		return CategoryOutput{}, &CategoryError{Category: cat.Name, Err: err}
	}

	var filter *ItemFilter
	if cat.Filter != "" {
		filter, err = CompileItemFilter(cat.Filter)
		if err != nil {
			return CategoryOutput{}, &CategoryError{Category: cat.Name, Err: err}
		}
	}

	if len(records) > cat.Limit {
		records = records[:cat.Limit]
	}

	credits := p.enrich(ctx, records)

	items := make([]MediaItem, 0, len(records))
	for i, rec := range records {
		item := Normalize(p.genres, rec, credits[i], p.fetchCredits)

		if filter != nil {
			keep, err := filter.Evaluate(item)
			if err != nil {
				// Keep the item rather than silently dropping it
				p.logger.Warn().
					Err(err).
					Str("category", cat.Name).
					Str("title", item.Title).
					Msg("Filter evaluation failed, keeping item")
			} else if !keep {
				continue
			}
		}

		items = append(items, item)
	}

	p.logger.Info().
		Str("category", cat.Name).
		Int("items", len(items)).
		Msg("Processed category")

	return CategoryOutput{ID: cat.ID, Name: cat.Name, Items: items}, nil
}

// enrich fetches credits for every record concurrently. The result slice is
// index-aligned with records so that output order stays the listing order
// regardless of completion order. Failed fetches leave a nil entry and are
// logged at debug level only; enrichment is best-effort per item.
func (p *Processor) enrich(ctx context.Context, records []tmdb.Record) []*tmdb.Credits {
	credits := make([]*tmdb.Credits, len(records))
	if !p.fetchCredits || len(records) == 0 {
		return credits
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			result, err := p.api.GetCredits(ctx, *rec.ID, rec.Kind)
			if err != nil {
				p.logger.Debug().
					Err(err).
					Int64("id", *rec.ID).
					Msg("Failed to fetch credits, continuing without")
				return nil
			}
			credits[i] = result
			return nil
		})
	}

	// Goroutines never return errors; Wait only joins them
	_ = g.Wait()

	return credits
}
