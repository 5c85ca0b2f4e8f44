package payment

import "math"

// Fixed storefront market: Swedish checkout, prices quoted in SEK
// inclusive of 25% VAT.
const (
	purchaseCountry  = "SE"
	purchaseCurrency = "SEK"
	locale           = "sv-SE"
	taxRateBps       = 2500 // basis points
	quantity         = 1
	quantityUnit     = "pcs"
)

// Amounts holds the order line totals in minor units (öre).
type Amounts struct {
	UnitPrice int64
	Total     int64
	Tax       int64
}

// ComputeAmounts converts a major-unit price into the minor-unit
// amounts the provider expects. The tax share of a VAT-inclusive gross
// at 25% is 20% of the gross.
func ComputeAmounts(price float64) Amounts {
	unit := int64(math.Round(price * 100))
	total := unit * quantity
	tax := int64(math.Round(float64(total) * 0.20))
	return Amounts{UnitPrice: unit, Total: total, Tax: tax}
}
