package usecase

import (
	"context"

	"shopdir/internal/domain/entity"
	"shopdir/internal/domain/service"
)

// CreateShopInput represents the input for creating a new shop.
// Photo is optional; all other fields are required.
type CreateShopInput struct {
	OwnerName     string `json:"owner_name"`
	ContactNumber string `json:"contact_number"`
	ShopNumber    string `json:"shop_number"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	Photo         *service.StagedUpload `json:"-"`
}

// UpdateShopInput represents the input for replacing an existing shop.
// Every mutable field is overwritten; a nil Photo keeps the current one.
type UpdateShopInput struct {
	OwnerName     string `json:"owner_name"`
	ContactNumber string `json:"contact_number"`
	ShopNumber    string `json:"shop_number"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	Photo         *service.StagedUpload `json:"-"`
}

// ShopUsecase defines the interface for the shop resource lifecycle.
type ShopUsecase interface {
	// ListShops returns every shop in the directory, unpaginated.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// GetShop returns the shop stored under the given external ID.
	GetShop(ctx context.Context, externalID string) (*entity.Shop, error)

	// CreateShop validates the input, enriches the location, stores the
	// optional photo and persists a new record under a fresh external ID.
	CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error)

	// UpdateShop replaces all mutable fields of an existing record and
	// swaps the photo when a new one is staged.
	UpdateShop(ctx context.Context, externalID string, input *UpdateShopInput) (*entity.Shop, error)

	// DeleteShop removes the record and its associated photo.
	DeleteShop(ctx context.Context, externalID string) error
}
