// Package entity contains the core business objects of the project.
package entity

// TimestampLayout is the textual format used for the shop modification
// timestamp in the JSON contract.
const TimestampLayout = "2006-01-02 15:04:05"

// Location is the geographic position of a shop. Coordinates are kept as
// the numeric strings supplied by the client; PlaceName is derived on the
// server from those coordinates and is never client-authoritative.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	PlaceName string `json:"placeName"`
}

// Shop is the sole entity of the directory. ExternalID is the only
// identifier exposed to clients; the storage-internal key never leaves the
// persistence layer.
type Shop struct {
	ExternalID         string   `json:"externalId"`  // Assigned once at creation, immutable.
	OwnerName          string   `json:"ownerName"`   // Required.
	ContactNumber      string   `json:"contactNumber"`
	ShopNumber         string   `json:"shopNumber"`
	Address            string   `json:"address"`
	Description        string   `json:"description"`
	PhotoRef           string   `json:"photoRef"` // Public relative path, "" when no photo attached.
	CreatedOrUpdatedAt string   `json:"createdOrUpdatedAt"` // TimestampLayout, refreshed on every mutation.
	Location           Location `json:"location"`
}
