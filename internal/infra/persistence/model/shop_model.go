// Package model contains the document representations used by the
// persistence layer, kept separate from the domain entities.
package model

import (
	"shopdir/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopModel is the BSON document stored for a shop. The Mongo ObjectID is
// storage-internal; clients only ever see ExternalID.
type ShopModel struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID         string             `bson:"external_id"`
	OwnerName          string             `bson:"owner_name"`
	ContactNumber      string             `bson:"contact_number"`
	ShopNumber         string             `bson:"shop_number"`
	Address            string             `bson:"address"`
	Description        string             `bson:"description"`
	PhotoRef           string             `bson:"photo_ref"`
	CreatedOrUpdatedAt string             `bson:"created_or_updated_at"`
	Location           LocationModel      `bson:"location"`
}

// LocationModel is the embedded location document.
type LocationModel struct {
	Latitude  string `bson:"latitude"`
	Longitude string `bson:"longitude"`
	PlaceName string `bson:"place_name"`
}

// FromShopDomain maps a domain shop onto its document form. The ObjectID is
// left zero so the driver assigns one on insert.
func FromShopDomain(shop *entity.Shop) *ShopModel {
	return &ShopModel{
		ExternalID:         shop.ExternalID,
		OwnerName:          shop.OwnerName,
		ContactNumber:      shop.ContactNumber,
		ShopNumber:         shop.ShopNumber,
		Address:            shop.Address,
		Description:        shop.Description,
		PhotoRef:           shop.PhotoRef,
		CreatedOrUpdatedAt: shop.CreatedOrUpdatedAt,
		Location: LocationModel{
			Latitude:  shop.Location.Latitude,
			Longitude: shop.Location.Longitude,
			PlaceName: shop.Location.PlaceName,
		},
	}
}

// ToShopDomain maps a stored document back onto the domain entity.
func (m *ShopModel) ToShopDomain() *entity.Shop {
	return &entity.Shop{
		ExternalID:         m.ExternalID,
		OwnerName:          m.OwnerName,
		ContactNumber:      m.ContactNumber,
		ShopNumber:         m.ShopNumber,
		Address:            m.Address,
		Description:        m.Description,
		PhotoRef:           m.PhotoRef,
		CreatedOrUpdatedAt: m.CreatedOrUpdatedAt,
		Location: entity.Location{
			Latitude:  m.Location.Latitude,
			Longitude: m.Location.Longitude,
			PlaceName: m.Location.PlaceName,
		},
	}
}
