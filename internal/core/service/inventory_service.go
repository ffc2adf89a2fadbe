package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

const maxPageLimit = 100

// InventoryService mediates all freezer and product access for the HTTP
// layer. Quantity adjustments are delegated whole to the repository's atomic
// primitives; this layer never reads a count and writes it back.
type InventoryService struct {
	freezers ports.FreezerRepository
	products ports.ProductRepository
	policy   domain.UnderflowPolicy
	logger   zerolog.Logger
}

func NewInventoryService(
	freezers ports.FreezerRepository,
	products ports.ProductRepository,
	policy domain.UnderflowPolicy,
	logger zerolog.Logger,
) *InventoryService {
	if policy == "" {
		policy = domain.UnderflowReject
	}
	return &InventoryService{
		freezers: freezers,
		products: products,
		policy:   policy,
		logger:   logger,
	}
}

func (s *InventoryService) ListFreezers(ctx context.Context, page ports.Page) ([]*domain.Freezer, error) {
	return s.freezers.List(ctx, clampPage(page))
}

func (s *InventoryService) GetFreezer(ctx context.Context, name string) (*domain.Freezer, error) {
	return s.freezers.Get(ctx, name)
}

func (s *InventoryService) ReplaceFreezer(ctx context.Context, f *domain.Freezer) (*domain.Freezer, error) {
	for product := range f.Products {
		if !domain.ValidProductName(product) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProductName, product)
		}
	}

	updated, err := s.freezers.Replace(ctx, f.Name, f)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("freezer", f.Name).Msg("freezer replaced")
	return updated, nil
}

func (s *InventoryService) RemoveFreezer(ctx context.Context, name string) error {
	if err := s.freezers.Remove(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("freezer", name).Msg("freezer removed")
	return nil
}

func (s *InventoryService) PutIn(ctx context.Context, name string, amounts map[string]int64) (*domain.Freezer, error) {
	if err := validateAmounts(amounts); err != nil {
		return nil, err
	}

	f, err := s.freezers.Add(ctx, name, amounts)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("freezer", name).Int("products", len(amounts)).Msg("put-in applied")
	return f, nil
}

func (s *InventoryService) PutOut(ctx context.Context, name string, amounts map[string]int64) (*domain.Freezer, error) {
	if err := validateAmounts(amounts); err != nil {
		return nil, err
	}

	f, err := s.freezers.Take(ctx, name, amounts, s.policy)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("freezer", name).Int("products", len(amounts)).Msg("put-out applied")
	return f, nil
}

func (s *InventoryService) RemoveProduct(ctx context.Context, name string, product string) (*domain.Freezer, error) {
	if !domain.ValidProductName(product) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidProductName, product)
	}

	f, err := s.freezers.RemoveProduct(ctx, name, product)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("freezer", name).Str("product", product).Msg("product removed")
	return f, nil
}

func (s *InventoryService) ListProducts(ctx context.Context, page ports.Page) ([]*domain.Product, error) {
	return s.products.List(ctx, clampPage(page))
}

func (s *InventoryService) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	return s.products.Get(ctx, name)
}

// validateAmounts rejects empty maps, unstorable product names, and
// non-positive counts before anything reaches the store. Names are checked
// here because the repository turns them into document field paths.
func validateAmounts(amounts map[string]int64) error {
	if len(amounts) == 0 {
		return fmt.Errorf("%w: no products given", domain.ErrInvalidAmount)
	}
	for product, n := range amounts {
		if !domain.ValidProductName(product) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidProductName, product)
		}
		if n <= 0 {
			return fmt.Errorf("%w: %q is %d", domain.ErrInvalidAmount, product, n)
		}
	}
	return nil
}

func clampPage(page ports.Page) ports.Page {
	if page.Limit < 0 {
		page.Limit = 0
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}
