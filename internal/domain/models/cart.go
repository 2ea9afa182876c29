package models

// CartLine is one entry in the cart: a value-copy of the product taken at
// add-time plus the chosen quantity and variant. Later catalog changes must
// not alter lines already in a cart, hence the copied fields.
type CartLine struct {
	ProductID      int64           `json:"productId"`
	Name           string          `json:"name"`
	Price          int             `json:"price"`
	ImageURL       string          `json:"imageUrl"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Options        *ProductOptions `json:"options,omitempty"`
	Quantity       int             `json:"quantity"`
	SelectedOption string          `json:"selectedOption,omitempty"`
}

// NewCartLine snapshots product into a line with the given quantity and
// variant selection. The empty option means "no variant chosen".
func NewCartLine(product *Product, quantity int, selectedOption string) CartLine {
	var opts *ProductOptions
	if product.Options != nil {
		opts = &ProductOptions{
			Name:   product.Options.Name,
			Values: append([]string(nil), product.Options.Values...),
		}
	}
	return CartLine{
		ProductID:      product.ID,
		Name:           product.Name,
		Price:          product.Price,
		ImageURL:       product.ImageURL,
		Description:    product.Description,
		Category:       product.Category,
		Options:        opts,
		Quantity:       quantity,
		SelectedOption: selectedOption,
	}
}

// Subtotal is the line price times quantity.
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}
