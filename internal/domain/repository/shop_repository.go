// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shopdir/internal/domain/entity"
	"shopdir/internal/errors"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when no shop exists for the given external ID.
	ErrShopNotFound = errors.New("shop not found")
	// ErrDuplicateShopID is returned when an insert collides with an existing external ID.
	ErrDuplicateShopID = errors.New("shop with this external ID already exists")
)

// ShopRepository defines the interface for shop-related document store operations.
// All lookups are keyed by the client-facing external ID, never by the
// storage-internal key.
type ShopRepository interface {
	// Create persists a new shop record. Returns ErrDuplicateShopID when the
	// external ID is already taken; the store must never silently overwrite.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindAll retrieves every shop record, unpaginated.
	FindAll(ctx context.Context) ([]*entity.Shop, error)

	// FindByID retrieves a shop by its external ID.
	// Returns ErrShopNotFound if no record exists.
	FindByID(ctx context.Context, externalID string) (*entity.Shop, error)

	// Replace overwrites the full record stored under the given external ID.
	// Returns ErrShopNotFound if no record exists.
	Replace(ctx context.Context, externalID string, shop *entity.Shop) error

	// DeleteByID removes the record stored under the given external ID.
	// Returns ErrShopNotFound if no record exists.
	DeleteByID(ctx context.Context, externalID string) error
}
