package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantityFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64 // scaled by 1e7
	}{
		{"integer", "3", 30_000_000},
		{"fraction", "0.5", 5_000_000},
		{"bare fraction", ".25", 2_500_000},
		{"negative", "-1.5", -15_000_000},
		{"explicit plus", "+2", 20_000_000},
		{"smallest step", "0.0000001", 1},
		{"extra digits truncated", "1.123456789", 11_234_567},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuantityFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Int64Scaled())
		})
	}
}

func TestNewQuantityFromString_Rejects(t *testing.T) {
	inputs := []string{"", "abc", "1e3", "1E3", "-2.5e-1", "1.5.5"}

	for _, input := range inputs {
		_, err := NewQuantityFromString(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "1.5000000", MustQuantity("1.5").String())
	assert.Equal(t, "-0.0000001", Quantity(-1).String())
	assert.Equal(t, "0.0000000", Quantity(0).String())
}

func TestQuantityUnmarshalJSON(t *testing.T) {
	var q Quantity

	require.NoError(t, json.Unmarshal([]byte(`12.25`), &q))
	assert.Equal(t, MustQuantity("12.25"), q)

	require.NoError(t, json.Unmarshal([]byte(`"-0.5"`), &q))
	assert.Equal(t, MustQuantity("-0.5"), q)

	require.NoError(t, json.Unmarshal([]byte(`null`), &q))
	assert.True(t, q.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`1e7`), &q))
}
