package category

import (
	"errors"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was not created
	// through the NewCategory factory method.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
)

// Category groups assets and owns the code prefix used when asset codes are
// generated. A category's prefix never changes once assets carry codes derived
// from it.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Prefix must not be empty
type Category struct {
	id     kernel.UUID
	name   string
	prefix string

	isConstructed bool
}

// NewCategory creates a new Category with validation.
//
// Parameters:
//   - id: Unique identifier for the category
//   - name: Display name (must not be empty)
//   - prefix: Short code prepended to generated asset codes (must not be empty)
//
// Returns the created category, or a validation error if any parameter is invalid.
func NewCategory(id kernel.UUID, name string, prefix string) (*Category, error) {
	c := &Category{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPrefix(prefix),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a Category from persisted state.
// It applies the same validation as NewCategory.
func RestoreCategory(id kernel.UUID, name string, prefix string) (*Category, error) {
	return NewCategory(id, name, prefix)
}

// Validate ensures the Category instance was properly constructed through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// IsEqual compares two categories by their unique identifiers.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category's display name.
func (c *Category) Name() string {
	return c.name
}

// Prefix returns the code prefix for assets in this category.
func (c *Category) Prefix() string {
	return c.prefix
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Category) setPrefix(prefix string) error {
	if prefix == "" {
		return errs.NewValueIsRequiredError("prefix")
	}
	c.prefix = prefix
	return nil
}
