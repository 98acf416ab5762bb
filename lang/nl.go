package lang

// Dutch follows the German pattern with "en" in reversed tens compounds.
// A diaeresis restores the syllable break when the connector meets a
// trailing e ("tweeëntwintig", "drieëndertig").
var Dutch = &Profile{
	Code: "nl",
	Name: "Dutch",

	Zero:       "nul",
	Negative:   "min",
	DecimalSep: "komma",

	Ones:           [10]string{"", "één", "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen"},
	OnesMultiplier: [10]string{"", "een"},
	Teens:          [10]string{"tien", "elf", "twaalf", "dertien", "veertien", "vijftien", "zestien", "zeventien", "achttien", "negentien"},
	Tens:           [10]string{"", "", "twintig", "dertig", "veertig", "vijftig", "zestig", "zeventig", "tachtig", "negentig"},

	Hundred:        "honderd",
	OmitOneHundred: true,

	ScaleMode:       ScaleThousand,
	Thousand:        "duizend",
	ScaleWords:      []string{"miljoen", "miljard", "biljoen", "biljard"},
	OmitOneThousand: true,
	MergeThousand:   true,

	TensReversed:       true,
	TensJoin:           "en",
	TensUnitMultiplier: true,

	SegmentSep:  "",
	ScaleJoin:   " ",
	WordSep:     "",
	ScaleSep:    " ",
	ScaleSepMin: 2,

	PhoneticRules: [][2]string{
		{"eeen", "eeën"},
		{"ieen", "ieën"},
	},
}
