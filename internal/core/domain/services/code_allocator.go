package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"amo/internal/core/domain/model/category"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
)

// codeSequenceWidth is the number of digits in the sequential part of an
// asset code. Codes are ordered as full strings, so the width must be
// constant for ordering to stay correct.
const codeSequenceWidth = 6

// codeSequenceMax is the largest sequence number representable within
// codeSequenceWidth digits.
const codeSequenceMax = 999999

// CodeAllocator is a domain service that generates unique asset codes of the
// form <prefix><6-digit-sequence>, where the prefix comes from the asset's
// category and the sequence increments per category.
//
// Two concurrent allocations for the same category would read the same
// maximum code and produce a duplicate, so the allocator serializes
// allocation per category: callers wrap the read-max-allocate-insert
// sequence in WithCategoryLock so it commits before the next allocation for
// that category begins. A unique constraint on the code column backstops the
// lock across processes.
//
// Example usage:
//
//	allocator := services.NewCodeAllocator()
//	err := allocator.WithCategoryLock(categoryID, func() error {
//	    maxCode, err := assetRepo.MaxCodeInCategory(ctx, categoryID)
//	    if err != nil {
//	        return err
//	    }
//	    code, err := allocator.NextCode(cat, maxCode)
//	    if err != nil {
//	        return err
//	    }
//	    // create and persist the asset with code, commit
//	    return nil
//	})
type CodeAllocator struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*sync.Mutex
}

// NewCodeAllocator creates a new CodeAllocator instance.
func NewCodeAllocator() *CodeAllocator {
	return &CodeAllocator{
		locks: make(map[kernel.UUID]*sync.Mutex),
	}
}

// WithCategoryLock runs fn while holding the allocation lock for the given
// category. Allocations for different categories proceed independently.
func (c *CodeAllocator) WithCategoryLock(categoryID kernel.UUID, fn func() error) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	lock := c.categoryLock(categoryID)
	lock.Lock()
	defer lock.Unlock()

	return fn()
}

// NextCode computes the next asset code for a category given the
// lexicographically-maximal existing code in that category. An empty maxCode
// means the category has no assets yet and yields <prefix>000001.
//
// The sequence is parsed from the digits following the category prefix, so
// maxCode must carry the category's own prefix; a malformed code fails with
// a value-is-invalid error.
func (c *CodeAllocator) NextCode(cat *category.Category, maxCode string) (string, error) {
	if err := cat.Validate(); err != nil {
		return "", err
	}
	if cat.Prefix() == "" {
		return "", errs.NewObjectNotFoundError("category prefix", cat.ID().String())
	}

	if maxCode == "" {
		return fmt.Sprintf("%s%0*d", cat.Prefix(), codeSequenceWidth, 1), nil
	}

	digits, ok := strings.CutPrefix(maxCode, cat.Prefix())
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"asset code",
			fmt.Errorf("code %q does not carry category prefix %q", maxCode, cat.Prefix()),
		)
	}

	sequence, err := strconv.Atoi(digits)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"asset code",
			fmt.Errorf("code %q has a non-numeric sequence: %w", maxCode, err),
		)
	}
	if sequence >= codeSequenceMax {
		return "", errs.NewValueIsOutOfRangeError("asset code sequence", sequence+1, 1, codeSequenceMax)
	}

	return fmt.Sprintf("%s%0*d", cat.Prefix(), codeSequenceWidth, sequence+1), nil
}

func (c *CodeAllocator) categoryLock(categoryID kernel.UUID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[categoryID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[categoryID] = lock
	}
	return lock
}
