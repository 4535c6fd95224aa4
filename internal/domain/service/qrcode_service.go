package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateProfileQR generates a QR code image pointing at a vendor's
	// public profile URL.
	GenerateProfileQR(slug string) ([]byte, error)
}
