package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bufu/storefront-api/internal/entity"
)

var catalogFixture = []domain.Product{
	{ID: "1", Title: "Ryggsäck", Price: 109.95, Image: "https://img.example.com/1.png"},
	{ID: "2", Title: "T-shirt", Price: 22.3, Image: "https://img.example.com/2.png"},
}

func TestListProductsWithoutCache(t *testing.T) {
	cat := &fakeCatalog{products: catalogFixture}
	uc := NewListProducts(cat, nil)

	ps, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalogFixture, ps)
}

func TestListProductsCacheMissThenHit(t *testing.T) {
	cat := &fakeCatalog{products: catalogFixture}
	c := &fakeCache{}
	uc := NewListProducts(cat, c)

	ps, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalogFixture, ps)
	assert.Equal(t, 1, cat.calls)

	// second call is served from cache
	ps, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalogFixture, ps)
	assert.Equal(t, 1, cat.calls)
}

func TestListProductsCacheFailureFallsThrough(t *testing.T) {
	cat := &fakeCatalog{products: catalogFixture}
	uc := NewListProducts(cat, &fakeCache{err: errUpstream})

	ps, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalogFixture, ps)
}

func TestListProductsCatalogFailure(t *testing.T) {
	uc := NewListProducts(&fakeCatalog{err: errUpstream}, nil)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, errUpstream)
}
