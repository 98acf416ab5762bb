package lang

// Russian inflects every scale word through the three-form congruence rule
// and renders the hundreds from a table of full irregular forms. The
// thousand is grammatically feminine, so its multiplier uses одна/две.
var Russian = &Profile{
	Code: "ru",
	Name: "Russian",

	Zero:       "ноль",
	Negative:   "минус",
	DecimalSep: "запятая",

	Ones:         [10]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
	OnesFeminine: [10]string{"", "одна", "две"},
	Teens:        [10]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"},
	Tens:         [10]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"},

	Hundreds: [10]string{
		"", "сто", "двести", "триста", "четыреста",
		"пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот",
	},

	ScaleMode:  ScaleInflected,
	PluralRule: PluralSlavic,
	PluralForms: map[int][]string{
		1: {"тысяча", "тысячи", "тысяч"},
		2: {"миллион", "миллиона", "миллионов"},
		3: {"миллиард", "миллиарда", "миллиардов"},
		4: {"триллион", "триллиона", "триллионов"},
		5: {"квадриллион", "квадриллиона", "квадриллионов"},
		6: {"квинтиллион", "квинтиллиона", "квинтиллионов"},
	},
	FeminineScales: map[int]bool{1: true},

	TensJoin:   " ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",
}
