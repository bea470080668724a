package vehicle_test

import (
	"testing"
	"time"

	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocs() vehicle.DocumentDates {
	return vehicle.DocumentDates{
		CirculationPermit: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		TechnicalReview:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Insurance:         time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		GasesReview:       time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func mustPlate(t *testing.T, raw string) kernel.Plate {
	t.Helper()
	plate, err := kernel.NewPlate(raw)
	require.NoError(t, err)
	return plate
}

func TestNewVehicle(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create available vehicle with no custody", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, mustPlate(t, "ABCD-123"), "Toyota", "Hilux", 2022, validDocs())

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(validID))
		assert.Equal(t, "ABCD-123", v.Plate().String())
		assert.Equal(t, "Toyota", v.Brand())
		assert.Equal(t, "Hilux", v.Model())
		assert.Equal(t, 2022, v.Year())
		assert.Equal(t, vehicle.Available, v.Status())
		assert.Nil(t, v.ActiveRouteLogID())
	})

	t.Run("should allow empty descriptive fields", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "WXYZ-999"), "", "", 0, validDocs())

		require.NoError(t, err)
		assert.Empty(t, v.Brand())
		assert.Zero(t, v.Year())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		v, err := vehicle.NewVehicle(invalidID, mustPlate(t, "ABCD-123"), "", "", 0, validDocs())

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unconstructed plate", func(t *testing.T) {
		var invalidPlate kernel.Plate

		v, err := vehicle.NewVehicle(kernel.NewUUID(), invalidPlate, "", "", 0, validDocs())

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), "plate must be created")
	})

	t.Run("should fail with out-of-range year", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 1900, validDocs())

		require.Error(t, err)
		assert.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("should restore in-use vehicle with pointer", func(t *testing.T) {
		logID := kernel.NewUUID()

		v, err := vehicle.RestoreVehicle(
			kernel.NewUUID(), mustPlate(t, "ABCD-123"), "Toyota", "Hilux", 2022,
			validDocs(), vehicle.InUse, &logID)

		require.NoError(t, err)
		assert.Equal(t, vehicle.InUse, v.Status())
		require.NotNil(t, v.ActiveRouteLogID())
		assert.True(t, v.ActiveRouteLogID().IsEqual(logID))
	})

	t.Run("should reject in-use vehicle without pointer", func(t *testing.T) {
		_, err := vehicle.RestoreVehicle(
			kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0,
			validDocs(), vehicle.InUse, nil)

		require.Error(t, err)
	})

	t.Run("should reject available vehicle with pointer", func(t *testing.T) {
		logID := kernel.NewUUID()

		_, err := vehicle.RestoreVehicle(
			kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0,
			validDocs(), vehicle.Available, &logID)

		require.Error(t, err)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := vehicle.RestoreVehicle(
			kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0,
			validDocs(), vehicle.Unknown, nil)

		require.Error(t, err)
	})
}

func TestVehicle_StartCustody(t *testing.T) {
	t.Run("available vehicle starts custody", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		logID := kernel.NewUUID()

		err = v.StartCustody(logID)

		require.NoError(t, err)
		assert.Equal(t, vehicle.InUse, v.Status())
		require.NotNil(t, v.ActiveRouteLogID())
		assert.True(t, v.ActiveRouteLogID().IsEqual(logID))
	})

	t.Run("second start fails with custody conflict", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.StartCustody(kernel.NewUUID()))

		err = v.StartCustody(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCustodyConflict)
		assert.Equal(t, vehicle.InUse, v.Status())
	})

	t.Run("maintenance vehicle cannot start custody", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.ChangeStatus(vehicle.Maintenance))

		err = v.StartCustody(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrCustodyConflict)
	})

	t.Run("invalid log id is rejected", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)

		var invalidLogID kernel.UUID
		err = v.StartCustody(invalidLogID)

		require.Error(t, err)
		assert.Equal(t, vehicle.Available, v.Status())
	})
}

func TestVehicle_HandOver(t *testing.T) {
	t.Run("in-use vehicle repoints to successor leg", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.StartCustody(kernel.NewUUID()))
		successor := kernel.NewUUID()

		err = v.HandOver(successor)

		require.NoError(t, err)
		assert.Equal(t, vehicle.InUse, v.Status(), "vehicle must stay in use through a handoff")
		assert.True(t, v.ActiveRouteLogID().IsEqual(successor))
	})

	t.Run("available vehicle cannot hand over", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)

		err = v.HandOver(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestVehicle_EndCustody(t *testing.T) {
	t.Run("in-use vehicle ends custody", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.StartCustody(kernel.NewUUID()))

		err = v.EndCustody()

		require.NoError(t, err)
		assert.Equal(t, vehicle.Available, v.Status())
		assert.Nil(t, v.ActiveRouteLogID())
	})

	t.Run("double end fails with invalid state", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.StartCustody(kernel.NewUUID()))
		require.NoError(t, v.EndCustody())

		err = v.EndCustody()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestVehicle_ChangeStatus(t *testing.T) {
	t.Run("manual maintenance toggle", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)

		require.NoError(t, v.ChangeStatus(vehicle.Maintenance))
		assert.Equal(t, vehicle.Maintenance, v.Status())

		require.NoError(t, v.ChangeStatus(vehicle.Available))
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("manual change rejected during custody", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.StartCustody(kernel.NewUUID()))

		err = v.ChangeStatus(vehicle.Maintenance)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, vehicle.InUse, v.Status())
	})
}

func TestVehicle_UpdateDetails(t *testing.T) {
	t.Run("updates administrative fields without touching custody", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "Toyota", "Hilux", 2022, validDocs())
		require.NoError(t, err)
		require.NoError(t, v.StartCustody(kernel.NewUUID()))

		newDocs := validDocs()
		newDocs.Insurance = newDocs.Insurance.AddDate(1, 0, 0)

		err = v.UpdateDetails(mustPlate(t, "EFGH-456"), "Ford", "Ranger", 2024, newDocs)

		require.NoError(t, err)
		assert.Equal(t, "EFGH-456", v.Plate().String())
		assert.Equal(t, "Ford", v.Brand())
		assert.Equal(t, newDocs, v.Documents())
		assert.Equal(t, vehicle.InUse, v.Status())
		assert.NotNil(t, v.ActiveRouteLogID())
	})

	t.Run("rejects unconstructed plate", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), mustPlate(t, "ABCD-123"), "", "", 0, validDocs())
		require.NoError(t, err)

		var invalidPlate kernel.Plate
		err = v.UpdateDetails(invalidPlate, "", "", 0, validDocs())

		require.Error(t, err)
		assert.Equal(t, "ABCD-123", v.Plate().String())
	})
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var v vehicle.Vehicle

		require.Error(t, v.Validate())
	})

	t.Run("nil pointer is invalid", func(t *testing.T) {
		var v *vehicle.Vehicle

		require.Error(t, v.Validate())
	})
}
