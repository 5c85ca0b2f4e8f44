package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("invalid product price")
)

// Product is a catalog record. Sourced from the external product API,
// never persisted here.
type Product struct {
	ID    string
	Title string
	Price float64 // major currency units
	Image string
}

func (p Product) Validate() error {
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
