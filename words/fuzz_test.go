package words

import (
	"testing"

	"github.com/forzagreen/n2words-sub000/lang"
)

// FuzzToWords verifies that ToWords never panics for any string input in
// any registered language.
func FuzzToWords(f *testing.F) {
	f.Add("en", "0")
	f.Add("en", "1234567")
	f.Add("en", "-3.14")
	f.Add("de", "21")
	f.Add("fr", "1,5")
	f.Add("ja", "123456789")
	f.Add("he", "9999")
	f.Add("he", "10000")
	f.Add("ru", "21000")
	f.Add("es", "+100")
	f.Add("xx", "1")
	f.Add("", "")
	f.Add("en", "abc")
	f.Add("en", "\xff\xfe")
	f.Add("en", "00000000000000000000000000000000000000001")

	f.Fuzz(func(t *testing.T, code, input string) {
		// Must not panic.
		_, _ = ToWords(input, Options{Lang: code})
	})
}

// FuzzToWordsInt verifies that every language renders every int64 without
// panicking, returning either text or a range error.
func FuzzToWordsInt(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(999))
	f.Add(int64(1000))
	f.Add(int64(123456789))
	f.Add(int64(9223372036854775807))
	f.Add(int64(-9223372036854775808))

	codes := lang.Codes()
	f.Fuzz(func(t *testing.T, n int64) {
		for _, code := range codes {
			text, err := ToWords(n, Options{Lang: code})
			if err == nil && text == "" {
				t.Errorf("ToWords(%d, %s) returned empty text with nil error", n, code)
			}
		}
	})
}
