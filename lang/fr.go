package lang

// French keeps the vigesimal remnants the generic table model cannot
// express: 70 and 90 borrow the teens ("soixante-dix",
// "quatre-vingt-onze"), 80 is "quatre-vingts" with its plural s dropped
// before a following numeral or scale word, and 21/31/../71 insert "et".
// The whole group renderer is therefore a profile-level override.
var French = &Profile{
	Code: "fr",
	Name: "French",

	Zero:       "zéro",
	Negative:   "moins",
	DecimalSep: "virgule",

	Ones: frOnes,

	ScaleMode:       ScaleThousand,
	Thousand:        "mille",
	OmitOneThousand: true,
	ScaleWords:      []string{"million", "milliard", "billion", "billiard"},
	ScalePairs: map[int][2]string{
		2: {"million", "millions"},
		3: {"milliard", "milliards"},
		4: {"billion", "billions"},
		5: {"billiard", "billiards"},
	},

	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",

	SegmentOverride: renderFrench,
}

// renderFrench reads these rather than the profile fields so the French
// variable's initializer does not depend on its own functions.
var frOnes = [10]string{"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}

var frTeens = [10]string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}

var frTens = [10]string{"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante", "", "quatre-vingt", ""}

func frUnit(d int64, g Gender) string {
	if d == 1 && g == Feminine {
		return "une"
	}
	return frOnes[d]
}

// renderFrench renders one group of up to three digits.
func renderFrench(n int64, g Gender, beforeScale bool) string {
	h := n / 100
	rem := n % 100

	var hundred string
	switch {
	case h == 1:
		hundred = "cent"
	case h > 1:
		hundred = frOnes[h] + " cent"
		// "deux cents" but "deux cent mille" and "deux cent un".
		if rem == 0 && !beforeScale {
			hundred += "s"
		}
	}

	var rest string
	t, o := rem/10, rem%10
	switch {
	case rem == 0:
	case rem < 10:
		rest = frUnit(o, g)
	case rem < 20:
		rest = frTeens[o]
	case t == 7:
		if o == 1 {
			rest = "soixante et onze"
		} else {
			rest = "soixante-" + frTeens[o]
		}
	case t == 8:
		switch {
		case o == 0 && beforeScale:
			rest = "quatre-vingt"
		case o == 0:
			rest = "quatre-vingts"
		default:
			rest = "quatre-vingt-" + frUnit(o, g)
		}
	case t == 9:
		rest = "quatre-vingt-" + frTeens[o]
	default:
		switch o {
		case 0:
			rest = frTens[t]
		case 1:
			rest = frTens[t] + " et " + frUnit(1, g)
		default:
			rest = frTens[t] + "-" + frUnit(o, g)
		}
	}

	switch {
	case hundred == "":
		return rest
	case rest == "":
		return hundred
	default:
		return hundred + " " + rest
	}
}
