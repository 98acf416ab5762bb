package lang

// English uses the short scale with a unique name per power of one
// thousand, a hyphen between tens and units, and "and" between a hundred
// word and its remainder.
var English = &Profile{
	Code: "en",
	Name: "English",

	Zero:       "zero",
	Negative:   "minus",
	DecimalSep: "point",

	Ones:  [10]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	Teens: [10]string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"},
	Tens:  [10]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},

	Hundred: "hundred",

	ScaleMode: ScaleSimple,
	ScaleWords: []string{
		"thousand", "million", "billion", "trillion", "quadrillion",
		"quintillion", "sextillion", "septillion", "octillion",
		"nonillion", "decillion",
	},

	TensJoin:       "-",
	SegmentSep:     " ",
	AfterHundred:   " and ",
	ScaleJoin:      " ",
	WordSep:        " ",
	ScaleSep:       " ",
	ChunkConnector: " and ",
}
