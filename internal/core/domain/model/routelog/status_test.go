package routelog_test

import (
	"fmt"
	"testing"

	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(routelog.Unknown))
		assert.Equal(t, 1, int(routelog.Active))
		assert.Equal(t, 2, int(routelog.Finished))
		assert.Equal(t, 3, int(routelog.Transferred))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []routelog.Status{routelog.Active, routelog.Finished, routelog.Transferred} {
			t.Run(fmt.Sprintf("should validate %s", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []routelog.Status{routelog.Unknown, routelog.Status(-1), routelog.Status(17)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ACTIVE", routelog.Active.String())
	assert.Equal(t, "FINISHED", routelog.Finished.String())
	assert.Equal(t, "TRANSFERRED", routelog.Transferred.String())
	assert.Equal(t, "Unknown", routelog.Unknown.String())
	assert.Equal(t, "Unknown", routelog.Status(9).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		for raw, want := range map[string]routelog.Status{
			"ACTIVE":      routelog.Active,
			"FINISHED":    routelog.Finished,
			"TRANSFERRED": routelog.Transferred,
		} {
			got, err := routelog.StatusFromString(raw)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := routelog.StatusFromString("OPEN")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsClosed(t *testing.T) {
	assert.False(t, routelog.Active.IsClosed())
	assert.True(t, routelog.Finished.IsClosed())
	assert.True(t, routelog.Transferred.IsClosed())
}

func TestStatus_Finish(t *testing.T) {
	t.Run("active leg can finish", func(t *testing.T) {
		newStatus, err := routelog.Active.Finish()

		require.NoError(t, err)
		assert.Equal(t, routelog.Finished, newStatus)
	})

	t.Run("closed legs cannot finish again", func(t *testing.T) {
		for _, status := range []routelog.Status{routelog.Finished, routelog.Transferred} {
			_, err := status.Finish()

			require.Error(t, err)
		}
	})
}

func TestStatus_Transfer(t *testing.T) {
	t.Run("active leg can transfer", func(t *testing.T) {
		newStatus, err := routelog.Active.Transfer()

		require.NoError(t, err)
		assert.Equal(t, routelog.Transferred, newStatus)
	})

	t.Run("closed legs cannot transfer again", func(t *testing.T) {
		for _, status := range []routelog.Status{routelog.Finished, routelog.Transferred} {
			_, err := status.Transfer()

			require.Error(t, err)
		}
	})
}

func TestStatus_ValidateCanHaveClosure(t *testing.T) {
	t.Run("active legs must not carry closure fields", func(t *testing.T) {
		require.NoError(t, routelog.Active.ValidateCanHaveClosure(false))
		require.Error(t, routelog.Active.ValidateCanHaveClosure(true))
	})

	t.Run("closed legs must carry closure fields", func(t *testing.T) {
		for _, status := range []routelog.Status{routelog.Finished, routelog.Transferred} {
			require.NoError(t, status.ValidateCanHaveClosure(true))
			require.Error(t, status.ValidateCanHaveClosure(false))
		}
	})
}
