// internal/pkg/numeric/numeric.go
package numeric

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalid is returned when a value cannot be read as a number
var ErrInvalid = errors.New("invalid number")

// Parse reads a user-entered number. Both "." and "," are accepted as decimal
// separators; when both appear, the last one is the decimal separator and the
// others are treated as thousands separators ("1.234,56" and "1,234.56" are 1234.56).
func Parse(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "'", "").Replace(s)
	if s == "" {
		return 0, ErrInvalid
	}

	if last := strings.LastIndexAny(s, ".,"); last >= 0 {
		intPart := strings.NewReplacer(".", "", ",", "").Replace(s[:last])
		s = intPart + "." + s[last+1:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalid
	}

	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalid
	}

	return f, nil
}

// Clamp maps negative and non-finite values to 0
func Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Equal compares two amounts at decimal precision, so 2.5 parsed from "2,50"
// equals a stored 2.5.
func Equal(a, b float64) bool {
	return decimal.NewFromFloat(a).Equal(decimal.NewFromFloat(b))
}

// Mul returns a*b computed in decimal arithmetic
func Mul(a, b float64) decimal.Decimal {
	return decimal.NewFromFloat(Clamp(a)).Mul(decimal.NewFromFloat(Clamp(b)))
}

// Sub returns a-b computed in decimal arithmetic
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Float64()
	return f
}

// Input is a raw numeric field from a request body. It accepts JSON numbers
// as well as strings ("2,5") so parsing and coercion stay in the domain.
type Input string

// UnmarshalJSON implements json.Unmarshaler
func (in *Input) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*in = ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*in = Input(str)
	default:
		*in = Input(s)
	}
	return nil
}

// String returns the raw text
func (in Input) String() string {
	return string(in)
}
