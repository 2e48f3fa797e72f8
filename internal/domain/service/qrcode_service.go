package service

// QRCodeService generates scannable share codes for shop records.
type QRCodeService interface {
	// GenerateShopQR generates a PNG QR code that encodes the share payload
	// for the given shop external ID.
	GenerateShopQR(externalID string) ([]byte, error)
}
