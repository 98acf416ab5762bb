package lang

// Turkish drops "bir" before both the hundred and the thousand word
// ("yüz", "bin") but keeps it before larger scales ("bir milyon").
var Turkish = &Profile{
	Code: "tr",
	Name: "Turkish",

	Zero:       "sıfır",
	Negative:   "eksi",
	DecimalSep: "virgül",

	Ones:  [10]string{"", "bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz"},
	Teens: [10]string{"on", "on bir", "on iki", "on üç", "on dört", "on beş", "on altı", "on yedi", "on sekiz", "on dokuz"},
	Tens:  [10]string{"", "", "yirmi", "otuz", "kırk", "elli", "altmış", "yetmiş", "seksen", "doksan"},

	Hundred:        "yüz",
	OmitOneHundred: true,

	ScaleMode:       ScaleSimple,
	ScaleWords:      []string{"bin", "milyon", "milyar", "trilyon", "katrilyon", "kentilyon"},
	OmitOneThousand: true,

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
