package domain

// CategoryRecord is the persisted category metadata managed from the admin
// console. ProductCount is a cache recomputed from the live catalog on each
// load, never incrementally maintained. Persisted field names keep the
// original store format (camelCase).
type CategoryRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
}

// CategorySummary is the derived aggregate for listings sharing a category.
// It is computed from the catalog snapshot and never persisted.
type CategorySummary struct {
	Name                  string  `json:"name"`
	Count                 int     `json:"count"`
	TotalSavings          float64 `json:"totalSavings"`
	AvgDiscountPercentage float64 `json:"avgDiscountPercentage"`
}
