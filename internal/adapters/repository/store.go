// Package repository defines the company store interface and errors.
package repository

import (
	"context"

	"github.com/atlasbio/atlas/internal/domain/types"
)

// Store provides read/write access to company records.
type Store interface {
	// List returns all companies in insertion order.
	List(ctx context.Context) []types.Company

	// Get returns the company with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (types.Company, error)

	// Create adds a new company. The ticker is uppercased and must be
	// unique across live records; ErrDuplicateTicker otherwise.
	Create(ctx context.Context, in types.CompanyInput) (types.Company, error)

	// Update applies the non-nil fields of upd to the company with the
	// given id. A supplied ticker is re-uppercased. Returns ErrNotFound
	// if the id is unknown.
	Update(ctx context.Context, id string, upd types.CompanyUpdate) (types.Company, error)

	// Delete removes the company with the given id and returns it.
	// Returns ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) (types.Company, error)

	// Clear removes every record and returns the number removed.
	Clear(ctx context.Context) int

	// Count returns the number of live records.
	Count(ctx context.Context) int
}
