package asset

import (
	"errors"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
)

var (
	// ErrAssetIsNotConstructed is returned when an Asset instance was not created
	// through the NewAsset or RestoreAsset factory methods.
	ErrAssetIsNotConstructed = errors.New("Asset must be created via NewAsset constructor")
)

// Asset is the aggregate root for a physical asset tracked by the system.
//
// Asset follows these invariants:
//   - Must have a valid unique identifier
//   - Code is unique within its category and immutable after creation
//   - Belongs to exactly one category, immutable after creation
//   - Location is fixed at creation to the creating administrator's location
//     and partitions all later queries
//   - State is always one of the valid asset states
//
// Only name, specification, installed date and state are mutable after
// creation. Timestamps are refreshed on every mutation.
type Asset struct {
	id            kernel.UUID
	code          string
	name          string
	specification string
	location      string
	categoryID    kernel.UUID
	state         State
	installedDate time.Time
	createdDate   time.Time
	updatedDate   time.Time
	creatorID     kernel.UUID
	active        bool

	isConstructed bool
}

// NewAsset creates a new Asset with validation.
//
// The asset starts active with creation and update timestamps set to now.
// The code must already be allocated for the asset's category.
func NewAsset(
	id kernel.UUID,
	code string,
	name string,
	specification string,
	location string,
	categoryID kernel.UUID,
	state State,
	installedDate time.Time,
	creatorID kernel.UUID,
) (*Asset, error) {
	now := time.Now()
	a := &Asset{
		installedDate: installedDate,
		createdDate:   now,
		updatedDate:   now,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCode(code),
		a.setName(name),
		a.setLocation(location),
		a.setCategoryID(categoryID),
		a.setState(state),
		a.setCreatorID(creatorID),
	); err != nil {
		return nil, err
	}

	a.specification = specification
	return a, nil
}

// RestoreAsset reconstructs an Asset from persisted state, including its
// audit fields and active flag.
func RestoreAsset(
	id kernel.UUID,
	code string,
	name string,
	specification string,
	location string,
	categoryID kernel.UUID,
	state State,
	installedDate time.Time,
	createdDate time.Time,
	updatedDate time.Time,
	creatorID kernel.UUID,
	active bool,
) (*Asset, error) {
	a, err := NewAsset(id, code, name, specification, location, categoryID, state, installedDate, creatorID)
	if err != nil {
		return nil, err
	}

	a.createdDate = createdDate
	a.updatedDate = updatedDate
	a.active = active
	return a, nil
}

// Validate ensures the Asset instance was properly constructed through a factory method.
func (a *Asset) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssetIsNotConstructed
	}
	return nil
}

// IsEqual compares two assets by their unique identifiers.
func (a *Asset) IsEqual(other *Asset) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the asset's unique identifier.
func (a *Asset) ID() kernel.UUID {
	return a.id
}

// Code returns the asset's generated category-scoped code.
func (a *Asset) Code() string {
	return a.code
}

// Name returns the asset's display name.
func (a *Asset) Name() string {
	return a.name
}

// Specification returns the asset's free-form specification text.
func (a *Asset) Specification() string {
	return a.specification
}

// Location returns the location the asset was created at.
func (a *Asset) Location() string {
	return a.location
}

// CategoryID returns the identifier of the owning category.
func (a *Asset) CategoryID() kernel.UUID {
	return a.categoryID
}

// State returns the current lifecycle state of the asset.
func (a *Asset) State() State {
	return a.state
}

// InstalledDate returns the date the asset was installed.
func (a *Asset) InstalledDate() time.Time {
	return a.installedDate
}

// CreatedDate returns when the asset was created.
func (a *Asset) CreatedDate() time.Time {
	return a.createdDate
}

// UpdatedDate returns when the asset was last modified.
func (a *Asset) UpdatedDate() time.Time {
	return a.updatedDate
}

// CreatorID returns the identifier of the administrator who created the asset.
func (a *Asset) CreatorID() kernel.UUID {
	return a.creatorID
}

// IsActive reports whether the asset is visible to queries.
func (a *Asset) IsActive() bool {
	return a.active
}

// UpdateDetails mutates the asset's editable fields: name, specification,
// installed date and state. Code, category and location are immutable after
// creation. The update timestamp is refreshed.
func (a *Asset) UpdateDetails(name string, specification string, installedDate time.Time, state State) error {
	if err := errors.Join(
		a.setName(name),
		a.setState(state),
	); err != nil {
		return err
	}

	a.specification = specification
	a.installedDate = installedDate
	a.updatedDate = time.Now()
	return nil
}

// SetState overwrites the asset's state unconditionally. Transition legality
// is the responsibility of the workflow issuing the change.
func (a *Asset) SetState(state State) error {
	if err := a.setState(state); err != nil {
		return err
	}

	a.updatedDate = time.Now()
	return nil
}

func (a *Asset) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Asset) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	a.code = code
	return nil
}

func (a *Asset) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Asset) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	a.location = location
	return nil
}

func (a *Asset) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	a.categoryID = categoryID
	return nil
}

func (a *Asset) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	a.state = state
	return nil
}

func (a *Asset) setCreatorID(creatorID kernel.UUID) error {
	if err := creatorID.Validate(); err != nil {
		return err
	}
	a.creatorID = creatorID
	return nil
}
