// Package repository implements the data-access layer: one repository per
// entity, each translating list/get/create/update/delete calls into
// queries against the shared store handle.
//
// Error policy: every store failure is returned to the caller. Public
// page handlers may choose to degrade to an empty result; repositories
// themselves never swallow errors. Writes announce the affected public
// routes through a revalidate.Notifier and leave navigation to the
// caller.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrSlugTaken indicates a unique-slug violation reported by the store.
	ErrSlugTaken = errors.New("slug already in use")
)

// translateWriteError maps store-level failures on insert/update to the
// repository error taxonomy.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}

func translateLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
