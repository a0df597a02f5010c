package domain

import (
	"fmt"
	"math"

	"github.com/adielbeauty/storefront/pkg/money"
)

// Gender is the audience a product is tagged for
type Gender string

// Genders
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// Valid reports whether g is one of the known genders
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

// Brands carried by the shop
const (
	BrandAmity      = "AMITY"
	BrandAvon       = "AVON"
	BrandArthurFord = "Arthur Ford"
)

// Categories carried by the shop
const (
	CategorySkincare  = "Skincare"
	CategoryBodyCare  = "Body Care"
	CategoryFragrance = "Fragrance"
	CategoryHairCare  = "Hair Care"
	CategoryHandCare  = "Hand Care"
	CategoryMakeup    = "Makeup"
	CategoryDeodorant = "Deodorant"
)

// Brands lists the closed set of brands in display order
var Brands = []string{BrandAmity, BrandAvon, BrandArthurFord}

// Categories lists the closed set of categories in display order
var Categories = []string{
	CategorySkincare,
	CategoryBodyCare,
	CategoryFragrance,
	CategoryHairCare,
	CategoryHandCare,
	CategoryMakeup,
	CategoryDeodorant,
}

// Product represents a sellable catalog entry. Products are immutable once the
// catalog is built; callers receive copies.
type Product struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Brand         string       `json:"brand"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"original_price,omitempty"`
	Rating        float64      `json:"rating"`
	Category      string       `json:"category"`
	Gender        Gender       `json:"gender"`
	Image         string       `json:"image,omitempty"`
}

// DiscountPercent returns the rounded saving against the original price, 0 if none
func (p Product) DiscountPercent() int {
	return money.DiscountPercent(p.Price, p.OriginalPrice)
}

// Validate checks the product against the catalog's closed sets
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if !contains(Brands, p.Brand) {
		return fmt.Errorf("product %s: unknown brand %q", p.ID, p.Brand)
	}
	if !contains(Categories, p.Category) {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("product %s: invalid gender %q", p.ID, p.Gender)
	}
	if p.Price < 0 || p.OriginalPrice < 0 {
		return fmt.Errorf("product %s: price cannot be negative", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 || math.Mod(p.Rating*2, 1) != 0 {
		return fmt.Errorf("product %s: rating must be 0-5 in half points", p.ID)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
