package filter

import (
	"github.com/adielbeauty/storefront/internal/catalog/domain"
)

// All is the selector value that disables the category or brand predicate
const All = "All"

// ViewMode selects between the curated and the fully filterable view
type ViewMode string

// View modes
const (
	ViewFeatured ViewMode = "featured"
	ViewAll      ViewMode = "all"
)

// Selection is the transient filter state of one browsing session. It is never persisted.
type Selection struct {
	Category string        `json:"category"`
	Brand    string        `json:"brand"`
	Gender   domain.Gender `json:"gender"`
	ViewMode ViewMode      `json:"view_mode"`
}

// DefaultSelection is the featured view with every selector open.
// An invalid gender falls back to unisex, which shows everything.
func DefaultSelection(gender domain.Gender) Selection {
	if !gender.Valid() {
		gender = domain.GenderUnisex
	}
	return Selection{
		Category: All,
		Brand:    All,
		Gender:   gender,
		ViewMode: ViewFeatured,
	}
}

func (s Selection) matchesCategory(p domain.Product) bool {
	return s.Category == All || s.Category == "" || p.Category == s.Category
}

func (s Selection) matchesBrand(p domain.Product) bool {
	return s.Brand == All || s.Brand == "" || p.Brand == s.Brand
}

// matchesGender keeps unisex products in every gendered view, never the reverse
func (s Selection) matchesGender(p domain.Product) bool {
	if s.Gender == domain.GenderUnisex || s.Gender == "" {
		return true
	}
	return p.Gender == s.Gender || p.Gender == domain.GenderUnisex
}
