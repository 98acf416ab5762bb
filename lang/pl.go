package lang

// Polish uses the three-form rule for scale words and drops "jeden" before
// a bare "tysiąc".
var Polish = &Profile{
	Code: "pl",
	Name: "Polish",

	Zero:       "zero",
	Negative:   "minus",
	DecimalSep: "przecinek",

	Ones:         [10]string{"", "jeden", "dwa", "trzy", "cztery", "pięć", "sześć", "siedem", "osiem", "dziewięć"},
	OnesFeminine: [10]string{"", "jedna", "dwie"},
	Teens:        [10]string{"dziesięć", "jedenaście", "dwanaście", "trzynaście", "czternaście", "piętnaście", "szesnaście", "siedemnaście", "osiemnaście", "dziewiętnaście"},
	Tens:         [10]string{"", "", "dwadzieścia", "trzydzieści", "czterdzieści", "pięćdziesiąt", "sześćdziesiąt", "siedemdziesiąt", "osiemdziesiąt", "dziewięćdziesiąt"},

	Hundreds: [10]string{
		"", "sto", "dwieście", "trzysta", "czterysta",
		"pięćset", "sześćset", "siedemset", "osiemset", "dziewięćset",
	},

	ScaleMode:       ScaleInflected,
	PluralRule:      PluralSlavic,
	OmitOneThousand: true,
	PluralForms: map[int][]string{
		1: {"tysiąc", "tysiące", "tysięcy"},
		2: {"milion", "miliony", "milionów"},
		3: {"miliard", "miliardy", "miliardów"},
		4: {"bilion", "biliony", "bilionów"},
	},

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
