package usecase

import (
	"context"
	"errors"
)

var (
	ErrMissingOrderID = errors.New("order id missing")
	ErrNoSnippet      = errors.New("no html snippet in provider response")
)

type ConfirmOrder struct {
	gateway OrderGateway
}

func NewConfirmOrder(gateway OrderGateway) *ConfirmOrder {
	return &ConfirmOrder{gateway: gateway}
}

// Execute re-fetches the order from the provider and returns its
// embeddable confirmation markup. The provider record is authoritative;
// nothing is read locally.
func (uc *ConfirmOrder) Execute(ctx context.Context, orderID string) (string, error) {
	if orderID == "" {
		return "", ErrMissingOrderID
	}

	res, err := uc.gateway.RetrieveOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	snippet := res.HTMLSnippet()
	if snippet == "" {
		return "", ErrNoSnippet
	}
	return snippet, nil
}
