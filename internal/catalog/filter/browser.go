package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/adielbeauty/storefront/internal/catalog/domain"
)

var (
	ErrUnknownCommand  = errors.New("unknown catalog command")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownBrand    = errors.New("unknown brand")
	ErrUnknownGender   = errors.New("unknown gender")
)

// Command is a typed request to change a Browser's selection
type Command interface {
	apply(sel *Selection) error
}

// ShowAllProducts switches to the filterable view
type ShowAllProducts struct{}

// FilterByBrand switches to the filterable view with a brand preset
type FilterByBrand struct {
	Brand string
}

// ShowFeatured switches back to the curated view
type ShowFeatured struct{}

// SelectCategory sets the category selector. Ignored in the featured view.
type SelectCategory struct {
	Category string
}

// SelectBrand sets the brand selector. Ignored in the featured view.
type SelectBrand struct {
	Brand string
}

// SelectGender sets the gender selector in either view
type SelectGender struct {
	Gender domain.Gender
}

// ClearFilters reopens category and brand, keeping gender
type ClearFilters struct{}

func (ShowAllProducts) apply(sel *Selection) error {
	switchMode(sel, ViewAll)
	return nil
}

func (c FilterByBrand) apply(sel *Selection) error {
	if err := validateBrand(c.Brand); err != nil {
		return err
	}
	switchMode(sel, ViewAll)
	sel.Brand = c.Brand
	return nil
}

func (ShowFeatured) apply(sel *Selection) error {
	switchMode(sel, ViewFeatured)
	return nil
}

func (c SelectCategory) apply(sel *Selection) error {
	if err := validateCategory(c.Category); err != nil {
		return err
	}
	if sel.ViewMode == ViewAll {
		sel.Category = c.Category
	}
	return nil
}

func (c SelectBrand) apply(sel *Selection) error {
	if err := validateBrand(c.Brand); err != nil {
		return err
	}
	if sel.ViewMode == ViewAll {
		sel.Brand = c.Brand
	}
	return nil
}

func (c SelectGender) apply(sel *Selection) error {
	if !c.Gender.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGender, c.Gender)
	}
	sel.Gender = c.Gender
	return nil
}

func (ClearFilters) apply(sel *Selection) error {
	sel.Category = All
	sel.Brand = All
	return nil
}

// switchMode resets category and brand and keeps gender
func switchMode(sel *Selection, mode ViewMode) {
	sel.ViewMode = mode
	sel.Category = All
	sel.Brand = All
}

func validateCategory(category string) error {
	if category == All {
		return nil
	}
	for _, c := range domain.Categories {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

func validateBrand(brand string) error {
	if brand == All {
		return nil
	}
	for _, b := range domain.Brands {
		if b == brand {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBrand, brand)
}

// ParseCommand builds a command from its wire name and optional value
func ParseCommand(name, value string) (Command, error) {
	switch name {
	case "show_all_products":
		return ShowAllProducts{}, nil
	case "filter_by_brand":
		return FilterByBrand{Brand: value}, nil
	case "show_featured":
		return ShowFeatured{}, nil
	case "select_category":
		return SelectCategory{Category: value}, nil
	case "select_brand":
		return SelectBrand{Brand: value}, nil
	case "select_gender":
		return SelectGender{Gender: domain.Gender(value)}, nil
	case "clear_filters":
		return ClearFilters{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// View is what a Browser currently shows
type View struct {
	Selection Selection        `json:"selection"`
	Products  []domain.Product `json:"products"`
	Total     int              `json:"total"`
	Empty     bool             `json:"empty"`
}

// Browser holds one session's selection over a shared read-only catalog
type Browser struct {
	mu        sync.Mutex
	catalog   *domain.Catalog
	selection Selection
}

// NewBrowser creates a browser in the featured view for the given gender
func NewBrowser(c *domain.Catalog, gender domain.Gender) *Browser {
	return &Browser{
		catalog:   c,
		selection: DefaultSelection(gender),
	}
}

// Dispatch applies a command. A rejected command leaves the selection unchanged.
func (b *Browser) Dispatch(cmd Command) error {
	if cmd == nil {
		return ErrUnknownCommand
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.selection
	if err := cmd.apply(&next); err != nil {
		return err
	}
	b.selection = next
	return nil
}

// Selection returns the current selection
func (b *Browser) Selection() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection
}

// View computes the display list for the current selection
func (b *Browser) View() View {
	sel := b.Selection()
	products := Display(b.catalog, sel)
	return View{
		Selection: sel,
		Products:  products,
		Total:     len(products),
		Empty:     len(products) == 0,
	}
}
