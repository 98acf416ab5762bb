package lang

import "strings"

// Italian concatenates groups into single words below a million, merges
// onto "mille"/"mila", and elides the final vowel of a ten before uno and
// otto ("ventuno", "trentotto"). A compound ending in tre takes an acute
// accent ("ventitré").
var Italian = &Profile{
	Code: "it",
	Name: "Italian",

	Zero:       "zero",
	Negative:   "meno",
	DecimalSep: "virgola",

	Ones:           [10]string{"", "uno", "due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove"},
	OnesMultiplier: [10]string{"", "un"},
	Teens:          [10]string{"dieci", "undici", "dodici", "tredici", "quattordici", "quindici", "sedici", "diciassette", "diciotto", "diciannove"},
	Tens:           [10]string{"", "", "venti", "trenta", "quaranta", "cinquanta", "sessanta", "settanta", "ottanta", "novanta"},

	Hundred:        "cento",
	OmitOneHundred: true,

	ScaleMode:       ScaleThousand,
	Thousand:        "mille",
	ThousandPlural:  "mila",
	OmitOneThousand: true,
	MergeThousand:   true,
	ScaleWords:      []string{"milione", "miliardo", "bilione", "biliardo"},
	ScalePairs: map[int][2]string{
		2: {"milione", "milioni"},
		3: {"miliardo", "miliardi"},
		4: {"bilione", "bilioni"},
		5: {"biliardo", "biliardi"},
	},

	TensJoin:    "",
	SegmentSep:  "",
	ScaleJoin:   " ",
	WordSep:     "",
	ScaleSep:    " ",
	ScaleSepMin: 2,

	PhoneticRules: [][2]string{
		{"tiun", "tun"},
		{"taun", "tun"},
		{"tiotto", "totto"},
		{"taotto", "totto"},
		{"oott", "ott"},
	},

	PostProcess: accentFinalTre,
}

// accentFinalTre rewrites a trailing "tre" to "tré" in closed compounds
// ("ventitré"); a bare or space-separated "tre" keeps its plain spelling.
func accentFinalTre(s string) string {
	if len(s) > 3 && strings.HasSuffix(s, "tre") && s[len(s)-4] != ' ' {
		return s[:len(s)-3] + "tré"
	}
	return s
}
