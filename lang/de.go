package lang

// German reverses tens compounds ("einundzwanzig"), concatenates
// everything below a million into one word, and merges groups onto
// "tausend". The digit one is "eins" standalone, "ein" as a multiplier,
// and "eine" before the feminine scale nouns (Million, Milliarde, ...).
var German = &Profile{
	Code: "de",
	Name: "German",

	Zero:       "null",
	Negative:   "minus",
	DecimalSep: "Komma",

	Ones:           [10]string{"", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun"},
	OnesMultiplier: [10]string{"", "ein"},
	OnesFeminine:   [10]string{"", "eine"},
	Teens:          [10]string{"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn"},
	Tens:           [10]string{"", "", "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig"},

	Hundred: "hundert",

	ScaleMode:  ScaleThousand,
	Thousand:   "tausend",
	ScaleWords: []string{"Million", "Milliarde", "Billion", "Billiarde", "Trillion"},
	ScalePairs: map[int][2]string{
		2: {"Million", "Millionen"},
		3: {"Milliarde", "Milliarden"},
		4: {"Billion", "Billionen"},
		5: {"Billiarde", "Billiarden"},
		6: {"Trillion", "Trillionen"},
	},
	FeminineScales: map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true},
	MergeThousand:  true,

	TensReversed:       true,
	TensJoin:           "und",
	TensUnitMultiplier: true,

	SegmentSep:  "",
	ScaleJoin:   " ",
	WordSep:     "",
	ScaleSep:    " ",
	ScaleSepMin: 2,
}
