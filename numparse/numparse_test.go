package numparse

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	dec, err := decimal.NewFromString("-12.340")
	require.NoError(t, err)

	cases := []struct {
		name  string
		input any
		want  Number
	}{
		{"int zero", 0, Number{Int: "0"}},
		{"int", 42, Number{Int: "42"}},
		{"int64 negative", int64(-7), Number{Negative: true, Int: "7"}},
		{"int8", int8(-128), Number{Negative: true, Int: "128"}},
		{"uint64 max", uint64(18446744073709551615), Number{Int: "18446744073709551615"}},
		{"float", 1.5, Number{Int: "1", Frac: "5"}},
		{"float tenth", 0.1, Number{Int: "0", Frac: "1"}},
		{"float negative", -2.25, Number{Negative: true, Int: "2", Frac: "25"}},
		{"float32", float32(0.5), Number{Int: "0", Frac: "5"}},
		{"string", "123", Number{Int: "123"}},
		{"string plus sign", "+5", Number{Int: "5"}},
		{"string negative", "-10", Number{Negative: true, Int: "10"}},
		{"string dot", "3.14", Number{Int: "3", Frac: "14"}},
		{"string comma", "3,14", Number{Int: "3", Frac: "14"}},
		{"string leading dot", ".5", Number{Int: "0", Frac: "5"}},
		{"string leading zeros", "007", Number{Int: "7"}},
		{"string trailing frac zeros kept", "12.10", Number{Int: "12", Frac: "10"}},
		{"string whitespace", "  100  ", Number{Int: "100"}},
		{"negative zero", "-0", Number{Int: "0"}},
		{"negative zero frac", "-0.00", Number{Int: "0", Frac: "00"}},
		{"huge", "123456789012345678901234567890", Number{Int: "123456789012345678901234567890"}},
		{"decimal", dec, Number{Negative: true, Int: "12", Frac: "340"}},
		{"big int", new(big.Int).Neg(big.NewInt(1024)), Number{Negative: true, Int: "1024"}},
		{"big float", big.NewFloat(0.25), Number{Int: "0", Frac: "25"}},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"letters", "abc"},
		{"double dot", "3.14.15"},
		{"bare dot", "."},
		{"trailing dot", "3."},
		{"double sign", "--5"},
		{"exponent", "1e6"},
		{"underscore", "1_000"},
		{"inner space", "1 000"},
		{"nan", float64(0) / zeroFloat()},
		{"nil big int", (*big.Int)(nil)},
		{"nil big float", (*big.Float)(nil)},
		{"unsupported type", struct{}{}},
		{"nil", nil},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

// zeroFloat defeats the compiler's constant division check.
func zeroFloat() float64 { return 0 }

func ExampleParse() {
	n, _ := Parse("-3,14")
	fmt.Println(n.Negative, n.Int, n.Frac)
	// Output: true 3 14
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("123456.789")
	}
}
