// Package words renders numbers as written-out words.
//
// The engine is a single generic pipeline driven entirely by language
// profiles from the lang package: the integer part is split into digit
// groups, each group is rendered from the profile's vocabulary tables,
// scale words are resolved and inflected, and the pieces are joined with
// the profile's separators. Fraction digits are read out one by one after
// the profile's decimal-separator word.
//
// Input magnitude is unbounded for every language whose scale vocabulary
// reaches far enough; a value beyond the vocabulary fails with
// [ErrScaleOutOfRange] rather than being truncated.
//
// All functions are safe for concurrent use by multiple goroutines.
package words

import (
	"fmt"
	"strings"

	"github.com/forzagreen/n2words-sub000/lang"
	"github.com/forzagreen/n2words-sub000/numparse"
)

// Options adjusts a single conversion. The zero value selects English
// with the language's default gender.
type Options struct {
	// Lang is the language code, as accepted by lang.Get. Empty means "en".
	Lang string

	// Gender selects the digit-word gender in languages that distinguish
	// one; GenderDefault defers to the language.
	Gender lang.Gender

	// DropSpaces removes every space from the finished text.
	DropSpaces bool
}

// ErrScaleOutOfRange is wrapped by conversion failures where the integer
// part exceeds the language's scale vocabulary.
var ErrScaleOutOfRange = fmt.Errorf("words: number exceeds language scale vocabulary")

// ToWords converts value to words. It accepts the input types of
// numparse.Parse: Go integers and floats, numeric strings,
// decimal.Decimal, *big.Int, and *big.Float.
func ToWords(value any, opts Options) (string, error) {
	code := opts.Lang
	if code == "" {
		code = "en"
	}
	p, err := lang.Get(code)
	if err != nil {
		return "", err
	}

	n, err := numparse.Parse(value)
	if err != nil {
		return "", err
	}

	if p.MaxDigits > 0 && len(n.Int) > p.MaxDigits {
		return "", fmt.Errorf("%w: %s supports at most %d integer digits, got %d",
			ErrScaleOutOfRange, p.Code, p.MaxDigits, len(n.Int))
	}

	g := opts.Gender
	if g == lang.GenderDefault {
		g = p.DefaultGender
	}

	text, err := renderInteger(p, n.Int, g)
	if err != nil {
		return "", err
	}
	text = applyPhonetic(p, text)

	sep := tokenSep(p)
	if n.Frac != "" {
		var b strings.Builder
		b.Grow(len(text) + len(p.DecimalSep) + 8*len(n.Frac))
		b.WriteString(text)
		b.WriteString(sep)
		b.WriteString(p.DecimalSep)
		for i := 0; i < len(n.Frac); i++ {
			b.WriteString(sep)
			b.WriteString(digitWord(p, n.Frac[i]))
		}
		text = b.String()
	}

	if n.Negative {
		text = p.Negative + sep + text
	}
	if opts.DropSpaces {
		text = strings.ReplaceAll(text, " ", "")
	}
	return text, nil
}

// tokenSep is the separator between the sign word, the rendered number,
// and the decimal reading. Languages that write numbers as one unbroken
// string join these the same way.
func tokenSep(p *lang.Profile) string {
	if p.ScaleSep == "" {
		return ""
	}
	return " "
}

func digitWord(p *lang.Profile, c byte) string {
	if c == '0' {
		return p.Zero
	}
	return p.Ones[c-'0']
}

// applyPhonetic runs the profile's ordered rewrite rules and post-process
// hook over the integer text.
func applyPhonetic(p *lang.Profile, s string) string {
	for _, r := range p.PhoneticRules {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	if p.PostProcess != nil {
		s = p.PostProcess(s)
	}
	return s
}
