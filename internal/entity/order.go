package domain

import "encoding/json"

// ProviderOrder is the payment provider's order record as returned by
// its checkout API. Raw keeps the full body so callers can pass the
// provider response through untouched.
type ProviderOrder struct {
	ID          string          `json:"order_id"`
	Status      string          `json:"status"`
	HTMLSnippet string          `json:"html_snippet"`
	Raw         json.RawMessage `json:"-"`
}

// Rejection is a provider response with a non-success HTTP status.
// Snippet carries markup describing the refusal so the checkout page
// can still render.
type Rejection struct {
	StatusCode int
	Body       json.RawMessage
	Snippet    string
}

// OrderResult is the outcome of an order create/retrieve call: either
// the provider accepted (Order set) or it answered with an error
// (Rejection set). Transport failures are plain errors and never
// produce an OrderResult.
type OrderResult struct {
	Order     *ProviderOrder
	Rejection *Rejection
}

func (r OrderResult) Accepted() bool { return r.Order != nil }

// HTMLSnippet returns the embeddable markup for either outcome.
func (r OrderResult) HTMLSnippet() string {
	if r.Order != nil {
		return r.Order.HTMLSnippet
	}
	if r.Rejection != nil {
		return r.Rejection.Snippet
	}
	return ""
}
