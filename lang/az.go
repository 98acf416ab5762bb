package lang

// Azerbaijani mirrors Turkish grammar: "bir" is implicit before "yüz" and
// "min" and explicit before "milyon" and above.
var Azerbaijani = &Profile{
	Code: "az",
	Name: "Azerbaijani",

	Zero:       "sıfır",
	Negative:   "mənfi",
	DecimalSep: "vergül",

	Ones:  [10]string{"", "bir", "iki", "üç", "dörd", "beş", "altı", "yeddi", "səkkiz", "doqquz"},
	Teens: [10]string{"on", "on bir", "on iki", "on üç", "on dörd", "on beş", "on altı", "on yeddi", "on səkkiz", "on doqquz"},
	Tens:  [10]string{"", "", "iyirmi", "otuz", "qırx", "əlli", "altmış", "yetmiş", "səksən", "doxsan"},

	Hundred:        "yüz",
	OmitOneHundred: true,

	ScaleMode:       ScaleSimple,
	ScaleWords:      []string{"min", "milyon", "milyard", "trilyon", "kvadrilyon", "kvintilyon"},
	OmitOneThousand: true,

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
