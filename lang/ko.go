package lang

// Korean groups digits by ten thousand. Sino-Korean numerals drop 일
// before the sub-scale words 십/백/천 and before a bare leading 만;
// groups attach to their scale word with no space and a space follows
// each scale word.
var Korean = &Profile{
	Code: "ko",
	Name: "Korean",

	Zero:       "영",
	Negative:   "마이너스",
	DecimalSep: "점",

	Ones: [10]string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"},

	TenWord:  "십",
	Hundred:  "백",
	Thousand: "천",

	ScaleMode:  ScaleMyriad,
	ScaleWords: []string{"만", "억", "조", "경", "해"},

	OmitOneMyriadSub: true,
	OmitOneThousand:  true,

	ScaleJoin: "",
	WordSep:   " ",
	ScaleSep:  " ",
}
