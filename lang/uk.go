package lang

// Ukrainian shares the Russian structure: inflected scales, irregular
// hundreds, feminine thousand.
var Ukrainian = &Profile{
	Code: "uk",
	Name: "Ukrainian",

	Zero:       "нуль",
	Negative:   "мінус",
	DecimalSep: "кома",

	Ones:         [10]string{"", "один", "два", "три", "чотири", "п'ять", "шість", "сім", "вісім", "дев'ять"},
	OnesFeminine: [10]string{"", "одна", "дві"},
	Teens:        [10]string{"десять", "одинадцять", "дванадцять", "тринадцять", "чотирнадцять", "п'ятнадцять", "шістнадцять", "сімнадцять", "вісімнадцять", "дев'ятнадцять"},
	Tens:         [10]string{"", "", "двадцять", "тридцять", "сорок", "п'ятдесят", "шістдесят", "сімдесят", "вісімдесят", "дев'яносто"},

	Hundreds: [10]string{
		"", "сто", "двісті", "триста", "чотириста",
		"п'ятсот", "шістсот", "сімсот", "вісімсот", "дев'ятсот",
	},

	ScaleMode:  ScaleInflected,
	PluralRule: PluralSlavic,
	PluralForms: map[int][]string{
		1: {"тисяча", "тисячі", "тисяч"},
		2: {"мільйон", "мільйони", "мільйонів"},
		3: {"мільярд", "мільярди", "мільярдів"},
		4: {"трильйон", "трильйони", "трильйонів"},
	},
	FeminineScales: map[int]bool{1: true},

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
