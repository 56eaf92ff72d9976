package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "dot decimal", raw: "2.5", want: 2.5},
		{name: "comma decimal", raw: "2,5", want: 2.5},
		{name: "integer", raw: "3", want: 3},
		{name: "surrounding spaces", raw: "  4,75 ", want: 4.75},
		{name: "european thousands", raw: "1.234,56", want: 1234.56},
		{name: "english thousands", raw: "1,234.56", want: 1234.56},
		{name: "grouped with spaces", raw: "1 234,5", want: 1234.5},
		{name: "negative", raw: "-5", want: -5},
		{name: "empty", raw: "", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "trailing junk", raw: "2,5kg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1))
	assert.Equal(t, 3.5, Clamp(3.5))
	assert.Equal(t, 0.0, Clamp(0))
}

func TestEqual(t *testing.T) {
	a, err := Parse("2,50")
	require.NoError(t, err)

	assert.True(t, Equal(a, 2.5))
	assert.False(t, Equal(a, 2.51))
}

func TestMul(t *testing.T) {
	f, _ := Mul(0.1, 3).Float64()
	assert.Equal(t, 0.3, f)

	f, _ = Mul(-2, 3).Float64()
	assert.Equal(t, 0.0, f)
}

func TestInput_UnmarshalJSON(t *testing.T) {
	var body struct {
		Price    Input  `json:"price"`
		Quantity Input  `json:"quantity"`
		Missing  *Input `json:"missing"`
		Null     *Input `json:"null"`
	}

	err := json.Unmarshal([]byte(`{"price":"2,5","quantity":3,"null":null}`), &body)
	require.NoError(t, err)

	assert.Equal(t, "2,5", body.Price.String())
	assert.Equal(t, "3", body.Quantity.String())
	assert.Nil(t, body.Missing)
	assert.Nil(t, body.Null)
}
