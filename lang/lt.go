package lang

// Lithuanian inflects both its hundreds (stored as full phrases) and its
// scale words; any final digit from two to nine outside the teens selects
// the nominative plural.
var Lithuanian = &Profile{
	Code: "lt",
	Name: "Lithuanian",

	Zero:       "nulis",
	Negative:   "minus",
	DecimalSep: "kablelis",

	Ones:         [10]string{"", "vienas", "du", "trys", "keturi", "penki", "šeši", "septyni", "aštuoni", "devyni"},
	OnesFeminine: [10]string{"", "viena", "dvi"},
	Teens:        [10]string{"dešimt", "vienuolika", "dvylika", "trylika", "keturiolika", "penkiolika", "šešiolika", "septyniolika", "aštuoniolika", "devyniolika"},
	Tens:         [10]string{"", "", "dvidešimt", "trisdešimt", "keturiasdešimt", "penkiasdešimt", "šešiasdešimt", "septyniasdešimt", "aštuoniasdešimt", "devyniasdešimt"},

	Hundreds: [10]string{
		"", "šimtas", "du šimtai", "trys šimtai", "keturi šimtai",
		"penki šimtai", "šeši šimtai", "septyni šimtai", "aštuoni šimtai", "devyni šimtai",
	},

	ScaleMode:  ScaleInflected,
	PluralRule: PluralLithuanian,
	PluralForms: map[int][]string{
		1: {"tūkstantis", "tūkstančiai", "tūkstančių"},
		2: {"milijonas", "milijonai", "milijonų"},
		3: {"milijardas", "milijardai", "milijardų"},
		4: {"trilijonas", "trilijonai", "trilijonų"},
	},

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
