package models

// Product categories available in the catalog.
const (
	CategoryEarrings   = "earrings"
	CategoryNameplates = "nameplates"
)

// ProductOptions describes a single variant axis of a product
// (e.g. "Hook Material" with its allowed values).
type ProductOptions struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is an immutable catalog entry. Prices are whole rupees.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       int             `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Options     *ProductOptions `json:"options,omitempty"`
}
