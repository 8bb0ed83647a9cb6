package kernel_test

import (
	"testing"

	"launderly/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wireID = "8f14e45f-ceea-467f-a8d6-b556e85a1f2c"

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()
	require.NoError(t, id.Validate())

	other := kernel.NewUUID()
	assert.False(t, id.IsEqual(other))
	assert.NotEqual(t, id.String(), other.String())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("canonical form round-trips", func(t *testing.T) {
		id, err := kernel.UUIDFromString(wireID)

		require.NoError(t, err)
		assert.Equal(t, wireID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("alternate wire forms normalize to canonical", func(t *testing.T) {
		forms := []string{
			"{" + wireID + "}",
			"urn:uuid:" + wireID,
			"8f14e45fceea467fa8d6b556e85a1f2c",
		}
		for _, form := range forms {
			id, err := kernel.UUIDFromString(form)
			require.NoError(t, err, form)
			assert.Equal(t, wireID, id.String())
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		inputs := []string{
			"",
			"laundry-order-42",
			wireID[:20],
			wireID + "ff",
		}
		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through the binary column form", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x8f, 0x14, 0xe4})
		assert.Error(t, err)
	})

	t.Run("all-zero bytes are the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a, err := kernel.UUIDFromString(wireID)
	require.NoError(t, err)
	b, err := kernel.UUIDFromString(wireID)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.True(t, b.IsEqual(a))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails until constructed", func(t *testing.T) {
		var id kernel.UUID
		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("parsed nil UUID fails", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
