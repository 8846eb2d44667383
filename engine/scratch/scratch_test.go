package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatFormatsTwoDecimals(t *testing.T) {
	a := New(64)
	s, err := a.Float(3.14159, 2)
	require.NoError(t, err)
	assert.Equal(t, "3.14", s)
	assert.Equal(t, 4, a.Len())
}

func TestViewsSurviveLaterAppends(t *testing.T) {
	a := New(32)
	first, err := a.Float(-10, 2)
	require.NoError(t, err)
	second, err := a.Int(42)
	require.NoError(t, err)

	assert.Equal(t, "-10.00", first)
	assert.Equal(t, "42", second)
}

func TestOverflowReturnsErrFull(t *testing.T) {
	a := New(8)
	kept, err := a.Int(-1234)
	require.NoError(t, err)

	_, err = a.Float(123.456, 2)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, "-1234", kept)
	assert.Equal(t, 5, a.Len(), "failed append must not consume space")
}

func TestResetReclaimsSpace(t *testing.T) {
	a := New(4)
	_, err := a.Int(1234)
	require.NoError(t, err)
	a.Reset()
	assert.Equal(t, 0, a.Len())
	s, err := a.Sprintf("w%dz", 12)
	require.NoError(t, err)
	assert.Equal(t, "w12z", s)
}

func TestSprintf(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"ints", "Mouse (%d, %d)", []any{12, -3}, "Mouse (12, -3)"},
		{"hex", "ID: 0x%x", []any{uint32(255)}, "ID: 0xff"},
		{"float precision", "%.1f ms", []any{float32(2.26)}, "2.3 ms"},
		{"string and percent", "%s 100%%", []any{"load"}, "load 100%"},
		{"missing argument", "Mouse (%d, %d)", []any{1}, "Mouse (1, %!d(MISSING))"},
		{"dangling percent", "50%", nil, "50%!(NOVERB)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(128)
			got, err := a.Sprintf(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSprintfOverflowRollsBack(t *testing.T) {
	a := New(6)
	_, err := a.Sprintf("value %d", 1234)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 0, a.Len())
}
