// Package lang holds the language profiles for number-to-words conversion.
//
// A Profile is a passive configuration record: vocabulary tables plus
// behaviour flags. It contains no conversion logic and is never mutated
// after construction, so a single Profile may be shared by any number of
// concurrent conversions. The rendering engine lives in the words package.
//
// Profiles for the built-in languages are registered at startup. Consumers
// may add their own with [Register]; lookup by code goes through [Get],
// which also accepts region-qualified tags ("en-US", "pt_BR") and resolves
// them to their base language.
package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Gender selects between masculine and feminine digit-word forms in
// languages that distinguish them. The zero value defers to the profile's
// default.
type Gender int

const (
	GenderDefault Gender = iota // use the profile's DefaultGender
	Masculine
	Feminine
)

// ScaleMode selects how a scale index maps onto the profile's magnitude
// vocabulary.
type ScaleMode int

const (
	// ScaleSimple indexes ScaleWords directly: index 1 is the thousand
	// word, index 2 the million word, and so on.
	ScaleSimple ScaleMode = iota

	// ScaleThousand keeps the thousand word separate: index 1 resolves to
	// Thousand, index n >= 2 to ScaleWords[n-2] (or ScalePairs[n] when the
	// word pluralizes).
	ScaleThousand

	// ScaleCompound is the long scale: index 1 is Thousand, even indices
	// resolve to CompoundPairs[n/2-1], and odd indices above 1 compose
	// Thousand with the plural of the preceding named scale
	// ("mil millones").
	ScaleCompound

	// ScaleInflected looks up PluralForms[n] and selects one form through
	// the profile's PluralRule.
	ScaleInflected

	// ScaleMyriad groups digits by four; index n resolves to
	// ScaleWords[n-1] with no pluralization.
	ScaleMyriad
)

// PluralRule identifies the numeric-congruence rule used to pick one of
// several inflected forms. The rules themselves live in the words package;
// a profile only names which one applies to it.
type PluralRule int

const (
	// PluralOne is the two-form rule: the first form for a count of
	// exactly 1, the second otherwise.
	PluralOne PluralRule = iota

	// PluralSlavic is the three-form rule (singular, few, many) driven by
	// the count modulo 10 and 100.
	PluralSlavic

	// PluralLithuanian is the Baltic three-form variant where every final
	// digit from 2 to 9 outside the teens selects the "few" form.
	PluralLithuanian

	// PluralLatvian is the two-effective-form Baltic rule with a dedicated
	// third form for counts ending in 0 or in the teens.
	PluralLatvian

	// PluralCzech selects the "few" form for absolute counts 2-4, not for
	// every count whose final digit is 2-4.
	PluralCzech
)

// Profile describes one language: its number vocabulary and the grammatical
// switches the rendering engine honours. All separator and joiner fields
// hold the literal string inserted into the output; an empty string means
// direct concatenation.
type Profile struct {
	Code string // ISO 639-1 code, lower case
	Name string // English name, for diagnostics

	Zero       string
	Negative   string
	DecimalSep string // word read at the decimal separator

	// Ones holds the standalone digit words; index 0 is unused (Zero
	// covers it). OnesFeminine, where present, replaces Ones under a
	// feminine context; empty entries fall back to Ones. OnesMultiplier,
	// where present, replaces Ones when the digit multiplies a hundred,
	// thousand, or scale word ("ein" vs "eins").
	Ones           [10]string
	OnesFeminine   [10]string
	OnesMultiplier [10]string

	// Teens is indexed by the ones digit of 10-19, so Teens[0] is the
	// word for ten itself. Tens is indexed by the tens digit 2-9.
	Teens [10]string
	Tens  [10]string

	// Hundred is the regular hundred word, multiplied by a ones word.
	// HundredAlone, when set, replaces it for a bare 1xx group with no
	// tens or ones ("cien" vs "ciento"). Hundreds, when its index 1 entry
	// is set, is a table of full irregular hundred forms and takes
	// precedence over Hundred entirely.
	Hundred      string
	HundredAlone string
	Hundreds     [10]string

	ScaleMode     ScaleMode
	ScaleWords    []string
	ScalePairs    map[int][2]string // scale index → {singular, plural}
	CompoundPairs [][2]string       // long-scale names: entry k names 1000^(2k+2)
	PluralForms   map[int][]string  // scale index → ordered inflected forms
	PluralRule    PluralRule

	Thousand       string
	ThousandPlural string // merged-thousand plural ("mila"); empty means Thousand
	TenWord        string // myriad sub-ten word

	// MergeThousand glues a group directly onto the thousand word with no
	// separator ("zweitausend", "duemila").
	MergeThousand bool

	// MyriadThousandOne keeps the digit one before the thousand sub-word
	// when the group is followed by a scale word (一千万), even though
	// OmitOneMyriadSub drops it in a trailing group (千).
	MyriadThousandOne bool

	// FeminineScales marks scale indices whose multiplier takes the
	// feminine digit form ("одна тысяча", "eine Million").
	FeminineScales map[int]bool

	OmitOneHundred   bool // 100 renders as the bare hundred word
	OmitOneThousand  bool // a segment of exactly 1 at scale index 1 drops its digit word
	OmitOneScale     bool // same for scale indices >= 2
	OmitOneMyriadSub bool // myriad groups drop the digit 1 before ten/hundred/thousand sub-words

	// TensReversed puts the unit before the ten ("einundzwanzig"),
	// joined by TensJoin. TensUnitMultiplier makes the reversed unit use
	// the multiplier digit form.
	TensReversed       bool
	TensJoin           string
	TensUnitMultiplier bool

	SegmentSep   string // between hundred part and tens/ones within a group
	AfterHundred string // overrides SegmentSep after the hundred word ("and"); empty means SegmentSep
	ScaleJoin    string // between a group's words and its scale word
	WordSep      string // between rendered groups
	ScaleSep     string // after a group carrying a scale word at or above ScaleSepMin
	ScaleSepMin  int    // minimum scale index for ScaleSep; 0 means 1

	// ChunkConnector, when set, is inserted instead of WordSep before a
	// final space-free remainder below one hundred ("et tusind og en").
	ChunkConnector string

	// PhoneticRules are ordered pattern→replacement pairs applied once
	// over the composed integer text, left to right.
	PhoneticRules [][2]string

	// PostProcess, when set, runs after the phonetic pass (accent
	// restoration and similar language-specific fixups).
	PostProcess func(string) string

	// SegmentOverride, when set, replaces the generic group renderer for
	// grammars the table model cannot express (French tens). beforeScale
	// reports whether a scale word follows the group.
	SegmentOverride func(n int64, g Gender, beforeScale bool) string

	// RenderWhole, when set, bypasses segmentation entirely and renders
	// the full integer. Only meaningful together with MaxDigits.
	RenderWhole func(n int64, g Gender) string

	// MaxDigits caps the supported integer length; 0 means unbounded.
	// Input beyond the cap fails with a scale-out-of-range error.
	MaxDigits int

	DefaultGender Gender
}

// GroupSize returns the digit-group width for the profile: 4 in myriad
// mode, 3 otherwise.
func (p *Profile) GroupSize() int {
	if p.ScaleMode == ScaleMyriad {
		return 4
	}
	return 3
}

var (
	mu       sync.RWMutex
	profiles = map[string]*Profile{
		"az": Azerbaijani,
		"cs": Czech,
		"da": Danish,
		"de": German,
		"en": English,
		"es": Spanish,
		"fr": French,
		"he": Hebrew,
		"it": Italian,
		"ja": Japanese,
		"ko": Korean,
		"lt": Lithuanian,
		"lv": Latvian,
		"nl": Dutch,
		"pl": Polish,
		"ru": Russian,
		"tr": Turkish,
		"uk": Ukrainian,
	}
)

// ErrUnsupported is returned by Get for a code with no registered profile.
var ErrUnsupported = fmt.Errorf("lang: unsupported language")

// Get returns the profile registered for code. The lookup is
// case-insensitive and resolves region-qualified tags to their base
// language ("en-US" → "en"). The returned error for an unknown code lists
// every supported code.
func Get(code string) (*Profile, error) {
	mu.RLock()
	defer mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(code))
	if p, ok := profiles[key]; ok {
		return p, nil
	}

	// Region- or script-qualified tag: reduce to the base language.
	if tag, err := language.Parse(key); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			if p, ok := profiles[base.String()]; ok {
				return p, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupported, code, strings.Join(codesLocked(), ", "))
}

// Register adds or replaces a profile under its Code. Profiles must be
// fully constructed before registration and never mutated afterwards.
func Register(p *Profile) {
	mu.Lock()
	defer mu.Unlock()
	profiles[strings.ToLower(p.Code)] = p
}

// Codes returns the sorted list of registered language codes.
func Codes() []string {
	mu.RLock()
	defer mu.RUnlock()
	return codesLocked()
}

func codesLocked() []string {
	out := make([]string, 0, len(profiles))
	for code := range profiles {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
