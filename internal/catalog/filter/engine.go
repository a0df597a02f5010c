// Package filter reduces the static catalog and a Selection into the display list.
//
// Filter, Featured and Display are pure. Browser is the only stateful piece: it holds
// one session's Selection and applies typed commands to it.
package filter

import (
	"github.com/adielbeauty/storefront/internal/catalog/domain"
)

// Filter keeps the products matching the category, brand and gender predicates.
// Surviving products keep their relative input order.
func Filter(products []domain.Product, sel Selection) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if sel.matchesCategory(p) && sel.matchesBrand(p) && sel.matchesGender(p) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the curated products that pass the gender predicate
func Featured(c *domain.Catalog, gender domain.Gender) []domain.Product {
	sel := Selection{Category: All, Brand: All, Gender: gender}
	return Filter(c.Featured(), sel)
}

// Display picks the featured or the full pipeline depending on the view mode
func Display(c *domain.Catalog, sel Selection) []domain.Product {
	if sel.ViewMode == ViewAll {
		return Filter(c.Products(), sel)
	}
	return Featured(c, sel.Gender)
}
