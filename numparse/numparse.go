// Package numparse decomposes numeric input into sign, integer digits,
// and fraction digits for word rendering.
//
// Parse accepts Go integer types, floats, numeric strings, decimal.Decimal,
// *big.Int, and *big.Float, so callers can pass values of unbounded
// magnitude and precision. The result carries plain decimal digit strings;
// no numeric limits apply beyond the input type's own.
//
// All functions are safe for concurrent use by multiple goroutines.
package numparse

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a parsed numeric value. Int holds the integer digits with no
// leading zeros (the literal "0" for zero); Frac holds the fraction digits
// verbatim, leading and trailing zeros included, or is empty. A value of
// zero is never negative, so "-0.0" parses with Negative false.
type Number struct {
	Negative bool
	Int      string
	Frac     string
}

// ErrInvalid is wrapped by every parse failure.
var ErrInvalid = fmt.Errorf("numparse: invalid number")

// Parse decomposes value. Strings may carry a leading sign and one "." or
// "," decimal separator; anything else in them fails, including trailing
// unit suffixes, underscores, and whitespace inside the number. Floats
// parse at their shortest exact decimal representation. NaN and infinities
// fail.
func Parse(value any) (Number, error) {
	switch v := value.(type) {
	case int:
		return fromInt(int64(v)), nil
	case int8:
		return fromInt(int64(v)), nil
	case int16:
		return fromInt(int64(v)), nil
	case int32:
		return fromInt(int64(v)), nil
	case int64:
		return fromInt(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return fromUint(uint64(v)), nil
	case uint16:
		return fromUint(uint64(v)), nil
	case uint32:
		return fromUint(uint64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case decimal.Decimal:
		return fromString(v.String())
	case *big.Int:
		if v == nil {
			return Number{}, fmt.Errorf("%w: nil *big.Int", ErrInvalid)
		}
		return Number{
			Negative: v.Sign() < 0,
			Int:      new(big.Int).Abs(v).String(),
		}, nil
	case *big.Float:
		if v == nil {
			return Number{}, fmt.Errorf("%w: nil *big.Float", ErrInvalid)
		}
		if v.IsInf() {
			return Number{}, fmt.Errorf("%w: infinite *big.Float", ErrInvalid)
		}
		return fromString(v.Text('f', -1))
	case string:
		return fromString(v)
	default:
		return Number{}, fmt.Errorf("%w: unsupported type %T", ErrInvalid, value)
	}
}

func fromInt(n int64) Number {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return Number{Negative: true, Int: s[1:]}
	}
	return Number{Int: s}
}

func fromUint(n uint64) Number {
	return Number{Int: strconv.FormatUint(n, 10)}
}

func fromFloat(f float64) (Number, error) {
	if math.IsNaN(f) {
		return Number{}, fmt.Errorf("%w: NaN", ErrInvalid)
	}
	if math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: infinity", ErrInvalid)
	}
	return fromString(decimal.NewFromFloat(f).String())
}

func fromString(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, fmt.Errorf("%w: empty input", ErrInvalid)
	}

	var n Number
	switch s[0] {
	case '-':
		n.Negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexAny(s, ".,"); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
		if fracPart == "" || !allDigits(fracPart) {
			return Number{}, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
	}

	if intPart == "" && fracPart != "" {
		intPart = "0"
	}
	if !allDigits(intPart) {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	n.Int = trimLeadingZeros(intPart)
	n.Frac = fracPart

	// "-0", "-0.00" and friends carry no sign.
	if n.Negative && n.Int == "0" && allZeros(n.Frac) {
		n.Negative = false
	}
	return n, nil
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
