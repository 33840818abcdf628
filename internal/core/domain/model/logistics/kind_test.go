package logistics_test

import (
	"testing"

	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Validate(t *testing.T) {
	t.Run("should pass for valid kinds", func(t *testing.T) {
		require.NoError(t, logistics.Road.Validate())
		require.NoError(t, logistics.Sea.Validate())
	})

	t.Run("should fail for unknown kind", func(t *testing.T) {
		err := logistics.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for out of range kind", func(t *testing.T) {
		err := logistics.Kind(99).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 is not a valid kind")
	})
}

func TestKind_String(t *testing.T) {
	testCases := []struct {
		kind     logistics.Kind
		expected string
	}{
		{logistics.Unknown, "Unknown"},
		{logistics.Road, "Road"},
		{logistics.Sea, "Sea"},
		{logistics.Kind(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.String())
		})
	}
}

func TestKind_WireString(t *testing.T) {
	t.Run("should emit lowercase form", func(t *testing.T) {
		assert.Equal(t, "road", logistics.Road.WireString())
		assert.Equal(t, "sea", logistics.Sea.WireString())
	})

	t.Run("should round-trip through KindFromString", func(t *testing.T) {
		for _, kind := range []logistics.Kind{logistics.Road, logistics.Sea} {
			parsed, err := logistics.KindFromString(kind.WireString())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})
}

func TestKindFromString(t *testing.T) {
	t.Run("should parse valid kinds", func(t *testing.T) {
		kind, err := logistics.KindFromString("Road")
		require.NoError(t, err)
		assert.Equal(t, logistics.Road, kind)

		kind, err = logistics.KindFromString("Sea")
		require.NoError(t, err)
		assert.Equal(t, logistics.Sea, kind)
	})

	t.Run("should parse case insensitively", func(t *testing.T) {
		kind, err := logistics.KindFromString("road")
		require.NoError(t, err)
		assert.Equal(t, logistics.Road, kind)

		kind, err = logistics.KindFromString("SEA")
		require.NoError(t, err)
		assert.Equal(t, logistics.Sea, kind)
	})

	t.Run("should fail for unknown string", func(t *testing.T) {
		kind, err := logistics.KindFromString("air")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, logistics.Unknown, kind)
	})

	t.Run("should fail for empty string", func(t *testing.T) {
		_, err := logistics.KindFromString("")

		require.Error(t, err)
	})
}
