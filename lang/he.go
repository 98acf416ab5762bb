package lang

import "strings"

// Hebrew counts in the feminine by default and keeps dedicated dual forms
// for 200 (מאתיים) and 2000 (אלפיים); thousands three through nine use the
// construct state (שלושת אלפים). The vocabulary covers values up to 9999
// only, so the profile renders the whole number directly and caps the
// integer length at four digits.
var Hebrew = &Profile{
	Code: "he",
	Name: "Hebrew",

	Zero:       "אפס",
	Negative:   "מינוס",
	DecimalSep: "נקודה",

	// Feminine forms double as the digit words for decimal reading.
	Ones: [10]string{"", "אחת", "שתיים", "שלוש", "ארבע", "חמש", "שש", "שבע", "שמונה", "תשע"},

	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",

	RenderWhole:   renderHebrew,
	MaxDigits:     4,
	DefaultGender: Feminine,
}

var (
	heOnesF = [10]string{"", "אחת", "שתיים", "שלוש", "ארבע", "חמש", "שש", "שבע", "שמונה", "תשע"}
	heOnesM = [10]string{"", "אחד", "שניים", "שלושה", "ארבעה", "חמישה", "שישה", "שבעה", "שמונה", "תשעה"}

	heTeensF = [10]string{"עשר", "אחת עשרה", "שתים עשרה", "שלוש עשרה", "ארבע עשרה", "חמש עשרה", "שש עשרה", "שבע עשרה", "שמונה עשרה", "תשע עשרה"}
	heTeensM = [10]string{"עשרה", "אחד עשר", "שנים עשר", "שלושה עשר", "ארבעה עשר", "חמישה עשר", "שישה עשר", "שבעה עשר", "שמונה עשר", "תשעה עשר"}

	heTens = [10]string{"", "", "עשרים", "שלושים", "ארבעים", "חמישים", "שישים", "שבעים", "שמונים", "תשעים"}

	heHundreds = [10]string{
		"", "מאה", "מאתיים", "שלוש מאות", "ארבע מאות",
		"חמש מאות", "שש מאות", "שבע מאות", "שמונה מאות", "תשע מאות",
	}

	heThousands = [10]string{
		"", "אלף", "אלפיים", "שלושת אלפים", "ארבעת אלפים",
		"חמשת אלפים", "ששת אלפים", "שבעת אלפים", "שמונת אלפים", "תשעת אלפים",
	}
)

// renderHebrew renders 1-9999 with the conjunctive ו prefixed to the last
// component ("אלף ואחת").
func renderHebrew(n int64, g Gender) string {
	ones, teens := heOnesF, heTeensF
	if g == Masculine {
		ones, teens = heOnesM, heTeensM
	}

	var parts []string
	if th := n / 1000; th > 0 {
		parts = append(parts, heThousands[th])
	}
	if h := n / 100 % 10; h > 0 {
		parts = append(parts, heHundreds[h])
	}

	rem := n % 100
	switch {
	case rem == 0:
	case rem < 10:
		parts = append(parts, ones[rem])
	case rem < 20:
		parts = append(parts, teens[rem-10])
	default:
		parts = append(parts, heTens[rem/10])
		if o := rem % 10; o > 0 {
			parts = append(parts, ones[o])
		}
	}

	if len(parts) > 1 {
		parts[len(parts)-1] = "ו" + parts[len(parts)-1]
	}
	return strings.Join(parts, " ")
}
