package domain

import "math"

// Listing is one catalog entry: a discounted product record. Field names on
// the wire follow the catalog document format (snake_case), so an exported
// snapshot can be dropped back in place of the origin document unchanged.
type Listing struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	OriginalPrice      float64 `json:"original_price"`
	FinalPrice         float64 `json:"final_price"`
	DiscountPercentage int     `json:"discount_percentage"`
	Category           string  `json:"category"`
	DealType           string  `json:"deal_type"`
	ProductURL         string  `json:"product_url"`
	Brand              string  `json:"brand"`
	Condition          string  `json:"condition"`
	Featured           bool    `json:"featured"`
	ImageURL           string  `json:"image_url,omitempty"`
}

// Savings returns the absolute amount saved against the original price.
func (l Listing) Savings() float64 {
	return l.OriginalPrice - l.FinalPrice
}

// ComputeDiscount derives the discount percentage from the two prices,
// rounded to the nearest integer. A non-positive original price yields 0
// rather than a division by zero.
//
// The derived value is only recomputed on the admin edit path. Listings
// ingested from the catalog document keep whatever percentage they carry,
// consistent or not.
func ComputeDiscount(original, final float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - final) / original * 100))
}
