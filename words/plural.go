package words

import "github.com/forzagreen/n2words-sub000/lang"

// pluralize picks the inflected form of a scale word for the given
// multiplier count. A form index beyond the table clamps to the last
// entry, so two-form languages can share the three-form rules.
func pluralize(p *lang.Profile, count int64, forms []string) string {
	if len(forms) == 0 {
		return ""
	}
	idx := formIndex(p.PluralRule, count)
	if idx >= len(forms) {
		idx = len(forms) - 1
	}
	return forms[idx]
}

// formIndex maps a count onto a form slot: 0 singular, 1 few, 2 many.
func formIndex(rule lang.PluralRule, n int64) int {
	n10 := n % 10
	n100 := n % 100
	teens := n100 >= 11 && n100 <= 19

	switch rule {
	case lang.PluralSlavic:
		switch {
		case n10 == 1 && !teens:
			return 0
		case n10 >= 2 && n10 <= 4 && !teens:
			return 1
		default:
			return 2
		}
	case lang.PluralLithuanian:
		switch {
		case n10 == 1 && !teens:
			return 0
		case n10 == 0 || teens:
			return 2
		default:
			return 1
		}
	case lang.PluralLatvian:
		switch {
		case n10 == 0 || teens:
			return 2
		case n10 == 1:
			return 0
		default:
			return 1
		}
	case lang.PluralCzech:
		switch {
		case n == 1:
			return 0
		case n >= 2 && n <= 4:
			return 1
		default:
			return 2
		}
	default: // PluralOne
		if n == 1 {
			return 0
		}
		return 1
	}
}
