package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		set     bool
		invalid bool
		value   float64
	}{
		{name: "nil is unset", raw: nil},
		{name: "float64", raw: 42.5, set: true, value: 42.5},
		{name: "int", raw: 30, set: true, value: 30},
		{name: "numeric string", raw: "19.99", set: true, value: 19.99},
		{name: "numeric string with spaces", raw: "  25 ", set: true, value: 25},
		{name: "empty string is unset", raw: ""},
		{name: "blank string is unset", raw: "   "},
		{name: "word string is invalid", raw: "abc", invalid: true},
		{name: "NaN is invalid", raw: math.NaN(), invalid: true},
		{name: "Inf is invalid", raw: math.Inf(1), invalid: true},
		{name: "bool is invalid", raw: true, invalid: true},
		{name: "object is invalid", raw: map[string]any{"v": 1}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseAmount(tt.raw)
			assert.Equal(t, tt.set, a.IsSet())
			assert.Equal(t, tt.invalid, a.IsInvalid())
			if tt.set {
				assert.Equal(t, tt.value, a.Value())
			}
		})
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NumberAmount(19.99))
	require.NoError(t, err)
	assert.Equal(t, "19.99", string(data))

	data, err = json.Marshal(UnsetAmount())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	// Invalid never leaks to output
	data, err = json.Marshal(InvalidAmount())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var a Amount

	require.NoError(t, json.Unmarshal([]byte(`42`), &a))
	assert.True(t, a.IsSet())
	assert.Equal(t, 42.0, a.Value())

	require.NoError(t, json.Unmarshal([]byte(`null`), &a))
	assert.False(t, a.IsSet())
	assert.False(t, a.IsInvalid())

	// Uncoercible input binds without error; rejection happens at the
	// write boundary.
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &a))
	assert.True(t, a.IsInvalid())

	require.NoError(t, json.Unmarshal([]byte(`"15.50"`), &a))
	assert.True(t, a.IsSet())
	assert.Equal(t, 15.5, a.Value())
}

func TestAmountPtr(t *testing.T) {
	p := NumberAmount(10).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 10.0, *p)

	assert.Nil(t, UnsetAmount().Ptr())
	assert.Nil(t, InvalidAmount().Ptr())
}
