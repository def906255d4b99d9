package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for pickup QR code generation. The QR
// encodes an order reference the drone pilot scans to confirm handover at a
// delivery spot.
type QRCodeService interface {
	// GeneratePickupQR generates a PNG QR code for an order.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses QR data and returns the encoded order ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
