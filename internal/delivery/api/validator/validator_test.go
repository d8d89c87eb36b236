package validator

import (
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price" validate:"gt=0"`
	Kind     string          `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "a@example.com", Quantity: 1, Price: decimal.RequireFromString("0.01")})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "nope", Quantity: 0, Price: decimal.Zero, Kind: "c"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "email: must be a valid email")
		assert.Contains(t, appErr.Details(), "quantity: must be greater than 0")
		assert.Contains(t, appErr.Details(), "price: must be greater than 0")
		assert.Contains(t, appErr.Details(), "kind: must be one of [a b]")
	})
}
