package lang

// Czech picks the "few" form only for absolute counts of two to four, and
// its hundreds inflect with the multiplier (dvě stě, pět set), so the
// table stores the full phrases.
var Czech = &Profile{
	Code: "cs",
	Name: "Czech",

	Zero:       "nula",
	Negative:   "mínus",
	DecimalSep: "čárka",

	Ones:         [10]string{"", "jedna", "dva", "tři", "čtyři", "pět", "šest", "sedm", "osm", "devět"},
	OnesFeminine: [10]string{"", "jedna", "dvě"},
	Teens:        [10]string{"deset", "jedenáct", "dvanáct", "třináct", "čtrnáct", "patnáct", "šestnáct", "sedmnáct", "osmnáct", "devatenáct"},
	Tens:         [10]string{"", "", "dvacet", "třicet", "čtyřicet", "padesát", "šedesát", "sedmdesát", "osmdesát", "devadesát"},

	Hundreds: [10]string{
		"", "sto", "dvě stě", "tři sta", "čtyři sta",
		"pět set", "šest set", "sedm set", "osm set", "devět set",
	},

	ScaleMode:       ScaleInflected,
	PluralRule:      PluralCzech,
	OmitOneThousand: true,
	PluralForms: map[int][]string{
		1: {"tisíc", "tisíce", "tisíc"},
		2: {"milion", "miliony", "milionů"},
		3: {"miliarda", "miliardy", "miliard"},
		4: {"bilion", "biliony", "bilionů"},
	},
	FeminineScales: map[int]bool{3: true},

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
