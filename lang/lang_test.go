package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		code string
		want string
	}{
		{"plain", "en", "en"},
		{"upper case", "EN", "en"},
		{"padded", " de ", "de"},
		{"region tag", "en-US", "en"},
		{"underscore tag", "pt_BR", ""},
		{"region upper", "FR-FR", "fr"},
		{"script tag", "ja-JP", "ja"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := Get(tt.code)
			if tt.want == "" {
				require.ErrorIs(t, err, ErrUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Code)
		})
	}
}

func TestGetUnknownListsCodes(t *testing.T) {
	t.Parallel()

	_, err := Get("xx")
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "en")
	assert.Contains(t, err.Error(), "ja")
}

func TestRegister(t *testing.T) {
	t.Parallel()

	custom := &Profile{Code: "zz", Name: "Test", Zero: "nix", Negative: "neg", DecimalSep: "dot"}
	Register(custom)

	p, err := Get("zz")
	require.NoError(t, err)
	assert.Same(t, custom, p)
	assert.Contains(t, Codes(), "zz")
}

func TestCodesSorted(t *testing.T) {
	t.Parallel()

	codes := Codes()
	require.NotEmpty(t, codes)
	assert.IsIncreasing(t, codes)
}

// TestProfileSanity checks structural invariants every registered profile
// must hold for the rendering engine.
func TestProfileSanity(t *testing.T) {
	t.Parallel()

	for _, code := range Codes() {
		code := code
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			p, err := Get(code)
			require.NoError(t, err)

			assert.NotEmpty(t, p.Zero)
			assert.NotEmpty(t, p.Negative)
			assert.NotEmpty(t, p.DecimalSep)

			switch p.ScaleMode {
			case ScaleMyriad:
				assert.Equal(t, 4, p.GroupSize())
				assert.NotEmpty(t, p.TenWord)
				assert.NotEmpty(t, p.ScaleWords)
			case ScaleInflected:
				assert.NotEmpty(t, p.PluralForms)
			case ScaleCompound:
				assert.NotEmpty(t, p.Thousand)
				assert.NotEmpty(t, p.CompoundPairs)
			case ScaleThousand:
				assert.NotEmpty(t, p.Thousand)
			case ScaleSimple:
				if p.RenderWhole == nil {
					assert.NotEmpty(t, p.ScaleWords)
				}
			}

			if p.RenderWhole != nil {
				assert.Positive(t, p.MaxDigits)
				return
			}

			// Digit vocabulary: every nonzero digit has a word unless a
			// custom group renderer supplies them.
			if p.SegmentOverride == nil {
				for d := 1; d <= 9; d++ {
					assert.NotEmpty(t, p.Ones[d], "Ones[%d]", d)
				}
			}
		})
	}
}
