package usecase

import (
	"context"
	"errors"

	domain "github.com/bufu/storefront-api/internal/entity"
)

type fakeCatalog struct {
	products []domain.Product
	err      error
	calls    int
}

func (f *fakeCatalog) Products(ctx context.Context) ([]domain.Product, error) {
	f.calls++
	return f.products, f.err
}

func (f *fakeCatalog) Product(ctx context.Context, id string) (domain.Product, error) {
	f.calls++
	if f.err != nil {
		return domain.Product{}, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

type fakeGateway struct {
	createResult   domain.OrderResult
	createErr      error
	retrieveResult domain.OrderResult
	retrieveErr    error

	gotProduct domain.Product
	gotOrderID string
}

func (f *fakeGateway) CreateOrder(ctx context.Context, p domain.Product) (domain.OrderResult, error) {
	f.gotProduct = p
	return f.createResult, f.createErr
}

func (f *fakeGateway) RetrieveOrder(ctx context.Context, orderID string) (domain.OrderResult, error) {
	f.gotOrderID = orderID
	return f.retrieveResult, f.retrieveErr
}

type fakeCache struct {
	list []domain.Product
	byID map[string]domain.Product
	err  error
}

func (f *fakeCache) RecallList(ctx context.Context) ([]domain.Product, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.list, f.list != nil, nil
}

func (f *fakeCache) RememberList(ctx context.Context, ps []domain.Product) error {
	if f.err != nil {
		return f.err
	}
	f.list = ps
	return nil
}

func (f *fakeCache) Recall(ctx context.Context, id string) (domain.Product, bool, error) {
	if f.err != nil {
		return domain.Product{}, false, f.err
	}
	p, ok := f.byID[id]
	return p, ok, nil
}

func (f *fakeCache) Remember(ctx context.Context, p domain.Product) error {
	if f.err != nil {
		return f.err
	}
	if f.byID == nil {
		f.byID = map[string]domain.Product{}
	}
	f.byID[p.ID] = p
	return nil
}

var errUpstream = errors.New("upstream down")
