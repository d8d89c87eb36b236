package service

import "github.com/google/uuid"

// QRCodeService renders and reads the code a buyer shows when collecting an order.
type QRCodeService interface {
	GenerateOrderPickupQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderPickupQR accepts the scanned payload and returns the order it names.
	ParseOrderPickupQR(qrData string) (uuid.UUID, error)
}
