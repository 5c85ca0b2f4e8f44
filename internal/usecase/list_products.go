package usecase

import (
	"context"

	domain "github.com/bufu/storefront-api/internal/entity"
	"github.com/bufu/storefront-api/internal/logging"
)

type ListProducts struct {
	catalog Catalog
	cache   ProductCache // may be nil
}

func NewListProducts(catalog Catalog, cache ProductCache) *ListProducts {
	return &ListProducts{catalog: catalog, cache: cache}
}

// Execute returns the full product list, served from cache when warm.
// Cache failures degrade to a direct catalog fetch.
func (uc *ListProducts) Execute(ctx context.Context) ([]domain.Product, error) {
	if uc.cache != nil {
		if ps, ok, err := uc.cache.RecallList(ctx); err == nil && ok {
			return ps, nil
		} else if err != nil {
			logging.FromCtx(ctx).Warn("product cache recall failed", "error", err)
		}
	}

	ps, err := uc.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.RememberList(ctx, ps); err != nil {
			logging.FromCtx(ctx).Warn("product cache remember failed", "error", err)
		}
	}
	return ps, nil
}
