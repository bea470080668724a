package kernel_test

import (
	"strings"
	"testing"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlate(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		plate, err := kernel.NewPlate("  abcd-123 ")

		require.NoError(t, err)
		require.NoError(t, plate.Validate())
		assert.Equal(t, "ABCD-123", plate.String())
	})

	t.Run("same plate in different case is equal", func(t *testing.T) {
		p1, err := kernel.NewPlate("abcd-123")
		require.NoError(t, err)
		p2, err := kernel.NewPlate("ABCD-123")
		require.NoError(t, err)

		assert.True(t, p1.IsEqual(p2))
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := kernel.NewPlate("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject too short plate", func(t *testing.T) {
		_, err := kernel.NewPlate("AB1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject too long plate", func(t *testing.T) {
		_, err := kernel.NewPlate(strings.Repeat("A", kernel.PlateMaxLength+1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject forbidden characters", func(t *testing.T) {
		for _, raw := range []string{"ABCD 123", "ABCD_123", "ABCD#123"} {
			_, err := kernel.NewPlate(raw)

			require.Error(t, err, "plate %q should be rejected", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestPlate_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var plate kernel.Plate

		err := plate.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "plate must be created")
	})
}
