package lang

// Danish keeps the vigesimal tens names (halvtreds, halvfjerds, halvfems)
// and states the unit before the ten, joined by "og" ("enogtyve"). The
// neuter "et" multiplies hundrede and tusind while million and above take
// the common-gender "en".
var Danish = &Profile{
	Code: "da",
	Name: "Danish",

	Zero:       "nul",
	Negative:   "minus",
	DecimalSep: "komma",

	Ones:           [10]string{"", "en", "to", "tre", "fire", "fem", "seks", "syv", "otte", "ni"},
	OnesMultiplier: [10]string{"", "et"},
	OnesFeminine:   [10]string{"", "en"},
	Teens:          [10]string{"ti", "elleve", "tolv", "tretten", "fjorten", "femten", "seksten", "sytten", "atten", "nitten"},
	Tens:           [10]string{"", "", "tyve", "tredive", "fyrre", "halvtreds", "tres", "halvfjerds", "firs", "halvfems"},

	Hundred: "hundrede",

	ScaleMode:  ScaleThousand,
	Thousand:   "tusind",
	ScaleWords: []string{"million", "milliard", "billion", "billiard"},
	ScalePairs: map[int][2]string{
		2: {"million", "millioner"},
		3: {"milliard", "milliarder"},
		4: {"billion", "billioner"},
		5: {"billiard", "billiarder"},
	},
	FeminineScales: map[int]bool{2: true, 3: true, 4: true, 5: true},

	TensReversed: true,
	TensJoin:     "og",

	SegmentSep:     " ",
	AfterHundred:   " og ",
	ScaleJoin:      " ",
	WordSep:        " ",
	ScaleSep:       " ",
	ChunkConnector: " og ",
}
