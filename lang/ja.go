package lang

// Japanese groups digits by ten thousand and writes numbers as one
// unbroken kanji string. 一 is silent before 十/百/千 in a trailing group
// but spoken before 千 when a scale word follows (一千万), and 万 always
// takes its multiplier (一万).
var Japanese = &Profile{
	Code: "ja",
	Name: "Japanese",

	Zero:       "零",
	Negative:   "マイナス",
	DecimalSep: "点",

	Ones: [10]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"},

	TenWord:  "十",
	Hundred:  "百",
	Thousand: "千",

	ScaleMode:  ScaleMyriad,
	ScaleWords: []string{"万", "億", "兆", "京", "垓"},

	OmitOneMyriadSub:  true,
	MyriadThousandOne: true,

	ScaleJoin: "",
	WordSep:   "",
	ScaleSep:  "",
}
