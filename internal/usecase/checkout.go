package usecase

import (
	"context"

	domain "github.com/bufu/storefront-api/internal/entity"
	"github.com/bufu/storefront-api/internal/logging"
)

type CheckoutOutput struct {
	Product domain.Product
	Result  domain.OrderResult
}

type Checkout struct {
	catalog Catalog
	gateway OrderGateway
	cache   ProductCache // may be nil
}

func NewCheckout(catalog Catalog, gateway OrderGateway, cache ProductCache) *Checkout {
	return &Checkout{catalog: catalog, gateway: gateway, cache: cache}
}

// Execute fetches the product and creates a provider order for it.
// A rejection from the provider is carried inside the result; only a
// missing product or an unreachable provider returns an error.
func (uc *Checkout) Execute(ctx context.Context, productID string) (CheckoutOutput, error) {
	p, err := uc.product(ctx, productID)
	if err != nil {
		return CheckoutOutput{}, err
	}

	res, err := uc.gateway.CreateOrder(ctx, p)
	if err != nil {
		return CheckoutOutput{}, err
	}
	if !res.Accepted() {
		logging.FromCtx(ctx).Warn("provider rejected order",
			"product_id", p.ID, "status", res.Rejection.StatusCode)
	}
	return CheckoutOutput{Product: p, Result: res}, nil
}

func (uc *Checkout) product(ctx context.Context, id string) (domain.Product, error) {
	if uc.cache != nil {
		if p, ok, err := uc.cache.Recall(ctx, id); err == nil && ok {
			return p, nil
		}
	}

	p, err := uc.catalog.Product(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.Remember(ctx, p); err != nil {
			logging.FromCtx(ctx).Warn("product cache remember failed", "error", err)
		}
	}
	return p, nil
}
