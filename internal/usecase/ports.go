package usecase

import (
	"context"

	domain "github.com/bufu/storefront-api/internal/entity"
)

// Catalog is the external product API.
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (domain.Product, error)
}

// OrderGateway talks to the payment provider's checkout API.
// A returned error means the provider could not be reached; a provider
// that answered with an error status yields a Rejection inside the
// result instead.
type OrderGateway interface {
	CreateOrder(ctx context.Context, p domain.Product) (domain.OrderResult, error)
	RetrieveOrder(ctx context.Context, orderID string) (domain.OrderResult, error)
}

// ProductCache is a read-through cache in front of the catalog.
// Implementations must treat a miss as (zero, false, nil).
type ProductCache interface {
	RecallList(ctx context.Context) ([]domain.Product, bool, error)
	RememberList(ctx context.Context, ps []domain.Product) error
	Recall(ctx context.Context, id string) (domain.Product, bool, error)
	Remember(ctx context.Context, p domain.Product) error
}
