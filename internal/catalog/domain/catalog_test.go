package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 36, c.Len())
	assert.Len(t, c.Featured(), len(FeaturedIDs))

	p, ok := c.Lookup("avon-imari-set")
	require.True(t, ok)
	assert.Equal(t, BrandAvon, p.Brand)
	assert.Equal(t, GenderFemale, p.Gender)
	assert.Equal(t, "$25", p.Price.String())

	_, ok = c.Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestDefaultCatalogGendersAreExplicit(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, p := range c.Products() {
		assert.True(t, p.Gender.Valid(), p.ID)
	}
}

func TestNewCatalogRejectsInvalidData(t *testing.T) {
	valid := Product{ID: "a", Name: "A", Brand: BrandAmity, Price: 5, Rating: 4.5, Category: CategorySkincare, Gender: GenderUnisex}

	tests := []struct {
		name     string
		products []Product
		featured []string
	}{
		{"duplicate id", []Product{valid, valid}, nil},
		{"unknown brand", []Product{func() Product { p := valid; p.Brand = "Nivea"; return p }()}, nil},
		{"unknown category", []Product{func() Product { p := valid; p.Category = "Tools"; return p }()}, nil},
		{"missing gender", []Product{func() Product { p := valid; p.Gender = ""; return p }()}, nil},
		{"negative price", []Product{func() Product { p := valid; p.Price = -1; return p }()}, nil},
		{"quarter rating", []Product{func() Product { p := valid; p.Rating = 4.25; return p }()}, nil},
		{"rating above five", []Product{func() Product { p := valid; p.Rating = 5.5; return p }()}, nil},
		{"unknown featured id", []Product{valid}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.products, tt.featured)
			assert.Error(t, err)
		})
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	products := c.Products()
	products[0].Name = "changed"

	p, _ := c.Lookup(products[0].ID)
	assert.NotEqual(t, "changed", p.Name)
}

func TestProductDiscountPercent(t *testing.T) {
	p := Product{Price: 8, OriginalPrice: 10}
	assert.Equal(t, 20, p.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 8}.DiscountPercent())
}
