package ports

import "context"

// RecomputeSummary reports what a recompute pass did.
type RecomputeSummary struct {
	RunID           string `json:"run_id"`
	FreezersUpdated int    `json:"freezers_updated"`
	ProductsReset   int    `json:"products_reset"`
	ProductsSkipped int    `json:"products_skipped"`
}

// RecomputeService resets every product count in every freezer to that
// product's configured default. The pass is idempotent: re-running it after
// a partial failure converges to the same final state.
type RecomputeService interface {
	Run(ctx context.Context) (*RecomputeSummary, error)
}
