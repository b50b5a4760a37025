package cropvariantsbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAreaCompleteness(t *testing.T) {
	testCases := []struct {
		name    string
		area    Area
		missing []string
	}{
		{
			name:    "nil area misses everything",
			area:    nil,
			missing: []string{"x", "y", "width", "height"},
		},
		{
			name:    "full area is complete",
			area:    FullArea(),
			missing: nil,
		},
		{
			name:    "partial area reports missing keys in order",
			area:    Area{"y": 1, "height": 2},
			missing: []string{"x", "width"},
		},
		{
			name:    "extra keys do not hurt",
			area:    Area{"x": 0, "y": 0, "width": 1, "height": 1, "unit": "percent"},
			missing: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.missing, tc.area.MissingKeys())
			require.Equal(t, len(tc.missing) == 0, tc.area.Complete())
		})
	}
}

func TestAreaIsEmpty(t *testing.T) {
	require.True(t, Area(nil).IsEmpty())
	require.True(t, Area{}.IsEmpty())
	require.False(t, Area{"x": 0}.IsEmpty())
}

func TestAreaCloneIsIndependent(t *testing.T) {
	original := Area{"x": 0.5, "y": 0.5, "width": 0.5, "height": 0.5}
	copied := original.clone()

	copied["x"] = 0.9
	require.Equal(t, 0.5, original["x"])

	require.Nil(t, Area(nil).clone())
}

func TestRatioSetOrderAndRemoval(t *testing.T) {
	set := newRatioSet()
	set.Add("16:9", "wide")
	set.Add("4:3", "classic")
	set.Add("1:1", "square")

	require.Equal(t, []string{"16:9", "4:3", "1:1"}, set.Keys())

	set.Remove("4:3")
	require.Equal(t, []string{"16:9", "1:1"}, set.Keys())
	require.False(t, set.Has("4:3"))

	set.Remove("4:3")
	require.Equal(t, 2, set.Len())
}
