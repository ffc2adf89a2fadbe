package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

// RecomputeService implements the stored-procedure endpoint: every product
// count in every freezer is reset to that product's configured default.
//
// The pass is not transactional across the collection, but each freezer's
// update is a single atomic write and the whole pass is a pure function of
// the current product defaults. A run that fails partway can simply be
// re-run; it converges to the same final state.
type RecomputeService struct {
	freezers ports.FreezerRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewRecomputeService(
	freezers ports.FreezerRepository,
	products ports.ProductRepository,
	logger zerolog.Logger,
) *RecomputeService {
	return &RecomputeService{freezers: freezers, products: products, logger: logger}
}

func (s *RecomputeService) Run(ctx context.Context) (*ports.RecomputeSummary, error) {
	summary := &ports.RecomputeSummary{RunID: uuid.NewString()}
	log := s.logger.With().Str("run_id", summary.RunID).Logger()

	defaults, err := s.products.Defaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("recompute: load product defaults: %w", err)
	}

	err = s.freezers.Each(ctx, func(f *domain.Freezer) error {
		counts := make(map[string]int64, len(f.Products))
		for product := range f.Products {
			def, ok := defaults[product]
			if !ok {
				// No reference entry for this product; leave its count alone.
				summary.ProductsSkipped++
				continue
			}
			counts[product] = def
		}

		if len(counts) == 0 {
			return nil
		}

		if err := s.freezers.SetCounts(ctx, f.Name, counts); err != nil {
			return fmt.Errorf("reset %q: %w", f.Name, err)
		}

		summary.FreezersUpdated++
		summary.ProductsReset += len(counts)
		log.Debug().Str("freezer", f.Name).Int("products", len(counts)).Msg("freezer reset")
		return nil
	})
	if err != nil {
		log.Error().Err(err).
			Int("freezers_updated", summary.FreezersUpdated).
			Msg("recompute aborted partway, safe to re-run")
		return nil, fmt.Errorf("recompute: %w", err)
	}

	log.Info().
		Int("freezers_updated", summary.FreezersUpdated).
		Int("products_reset", summary.ProductsReset).
		Int("products_skipped", summary.ProductsSkipped).
		Msg("recompute finished")
	return summary, nil
}
