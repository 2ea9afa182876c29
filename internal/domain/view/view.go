package view

import (
	"fmt"

	"github.com/linemk/siya-shop/internal/domain/models"
)

// Name is the closed set of navigable screens.
type Name string

const (
	Home        Name = "home"
	Earrings    Name = "earrings"
	Nameplates  Name = "nameplates"
	Product     Name = "product"
	Nameplate   Name = "nameplate"
	Cart        Name = "cart"
	Checkout    Name = "checkout"
	About       Name = "about"
	AllProducts Name = "all-products"
	Login       Name = "login"
	MyOrders    Name = "my-orders"
)

// View is a tagged navigation target. Product-bearing kinds carry the
// product payload the screen needs; all other kinds carry none.
type View struct {
	Name    Name            `json:"name"`
	Product *models.Product `json:"product,omitempty"`
}

// Of builds a payload-free view.
func Of(name Name) View {
	return View{Name: name}
}

// ForProduct picks the detail screen for a product: nameplates open the
// customizer, everything else the plain product page.
func ForProduct(p *models.Product) View {
	if p.Category == models.CategoryNameplates {
		return View{Name: Nameplate, Product: p}
	}
	return View{Name: Product, Product: p}
}

// Validate checks the tag/payload pairing. The switch is exhaustive over
// every view name; an unknown tag is an error, not a fallthrough.
func (v View) Validate() error {
	switch v.Name {
	case Product, Nameplate:
		if v.Product == nil {
			return fmt.Errorf("view %q requires a product payload", v.Name)
		}
		return nil
	case Home, Earrings, Nameplates, Cart, Checkout, About, AllProducts, Login, MyOrders:
		if v.Product != nil {
			return fmt.Errorf("view %q does not take a product payload", v.Name)
		}
		return nil
	default:
		return fmt.Errorf("unknown view %q", v.Name)
	}
}
