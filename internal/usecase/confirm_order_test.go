package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bufu/storefront-api/internal/entity"
)

func TestConfirmOrderReturnsSnippet(t *testing.T) {
	gw := &fakeGateway{retrieveResult: domain.OrderResult{
		Order: &domain.ProviderOrder{ID: "abc123", Status: "checkout_complete", HTMLSnippet: "<div>OK</div>"},
	}}
	uc := NewConfirmOrder(gw)

	snippet, err := uc.Execute(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", gw.gotOrderID)
	assert.Equal(t, "<div>OK</div>", snippet)
}

func TestConfirmOrderMissingID(t *testing.T) {
	uc := NewConfirmOrder(&fakeGateway{})

	_, err := uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingOrderID)
}

func TestConfirmOrderNoSnippet(t *testing.T) {
	gw := &fakeGateway{retrieveResult: domain.OrderResult{
		Order: &domain.ProviderOrder{ID: "abc123", Status: "checkout_complete"},
	}}
	uc := NewConfirmOrder(gw)

	_, err := uc.Execute(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrNoSnippet)
}

func TestConfirmOrderRejectionSnippet(t *testing.T) {
	gw := &fakeGateway{retrieveResult: domain.OrderResult{
		Rejection: &domain.Rejection{StatusCode: 404, Snippet: "<h1>404 Not Found</h1>"},
	}}
	uc := NewConfirmOrder(gw)

	snippet, err := uc.Execute(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "<h1>404 Not Found</h1>", snippet)
}

func TestConfirmOrderTransportFailure(t *testing.T) {
	uc := NewConfirmOrder(&fakeGateway{retrieveErr: errUpstream})

	_, err := uc.Execute(context.Background(), "abc123")
	assert.ErrorIs(t, err, errUpstream)
}
