package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
	}{
		{"#141a1f", DarkGray},
		{"#ffffff", White},
		{"#ff000080", Red.WithAlpha(0x80)},
	} {
		got, err := ParseHex(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseHexRejects(t *testing.T) {
	for _, in := range []string{"", "141a1f", "#fff", "#gggggg"} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}

func TestFloats(t *testing.T) {
	assert.Equal(t, [4]float32{1, 0, 0, 1}, Red.Floats())
}
