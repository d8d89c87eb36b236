package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderPickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "marketplace://orders/pickup")

	qrBytes, err := service.GenerateOrderPickupQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderPickupQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateOrderPickupQR(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseOrderPickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	orderID := uuid.New()

	jsonData, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: orderPickupType})
	require.NoError(t, err)

	parsedID, err := service.ParseOrderPickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsedID)
}

func TestQRCodeService_ParseOrderPickupQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	jsonData, err := json.Marshal(QRCodeData{OrderID: uuid.NewString(), Type: "coupon"})
	require.NoError(t, err)

	_, err = service.ParseOrderPickupQR(string(jsonData))
	assert.ErrorContains(t, err, "invalid QR code type")
}

func TestQRCodeService_ParseOrderPickupQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseOrderPickupQR("not-json")
	assert.ErrorContains(t, err, "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseOrderPickupQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	jsonData, err := json.Marshal(QRCodeData{OrderID: "not-a-uuid", Type: orderPickupType})
	require.NoError(t, err)

	_, err = service.ParseOrderPickupQR(string(jsonData))
	assert.ErrorContains(t, err, "failed to parse order ID")
}
