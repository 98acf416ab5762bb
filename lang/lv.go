package lang

// Latvian uses the Baltic two-effective-form rule: a final 1 outside 11
// takes the singular, a final 0 or a teen count takes the genitive plural,
// everything else the nominative plural.
var Latvian = &Profile{
	Code: "lv",
	Name: "Latvian",

	Zero:       "nulle",
	Negative:   "mīnus",
	DecimalSep: "komats",

	Ones:         [10]string{"", "viens", "divi", "trīs", "četri", "pieci", "seši", "septiņi", "astoņi", "deviņi"},
	OnesFeminine: [10]string{"", "viena", "divas"},
	Teens:        [10]string{"desmit", "vienpadsmit", "divpadsmit", "trīspadsmit", "četrpadsmit", "piecpadsmit", "sešpadsmit", "septiņpadsmit", "astoņpadsmit", "deviņpadsmit"},
	Tens:         [10]string{"", "", "divdesmit", "trīsdesmit", "četrdesmit", "piecdesmit", "sešdesmit", "septiņdesmit", "astoņdesmit", "deviņdesmit"},

	Hundreds: [10]string{
		"", "simts", "divsimt", "trīssimt", "četrsimt",
		"piecsimt", "sešsimt", "septiņsimt", "astoņsimt", "deviņsimt",
	},

	ScaleMode:  ScaleInflected,
	PluralRule: PluralLatvian,
	PluralForms: map[int][]string{
		1: {"tūkstotis", "tūkstoši", "tūkstošu"},
		2: {"miljons", "miljoni", "miljonu"},
		3: {"miljards", "miljardi", "miljardu"},
	},

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
