package lang

// Spanish uses the long scale: "millón" names 10^6 and 10^9 is "mil
// millones". Hundreds are irregular full forms with the bare "cien" for an
// exact 1xx group, 21-29 contract to veinti- forms, and "uno" apocopates
// to "un" before a masculine scale noun.
var Spanish = &Profile{
	Code: "es",
	Name: "Spanish",

	Zero:       "cero",
	Negative:   "menos",
	DecimalSep: "coma",

	Ones:           [10]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"},
	OnesMultiplier: [10]string{"", "un"},
	OnesFeminine:   [10]string{"", "una"},
	Teens:          [10]string{"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve"},
	Tens:           [10]string{"", "", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"},

	Hundreds: [10]string{
		"", "ciento", "doscientos", "trescientos", "cuatrocientos",
		"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
	},
	HundredAlone: "cien",

	ScaleMode:       ScaleCompound,
	Thousand:        "mil",
	OmitOneThousand: true,
	CompoundPairs: [][2]string{
		{"millón", "millones"},
		{"billón", "billones"},
		{"trillón", "trillones"},
	},

	TensJoin:   " y ",
	SegmentSep: " ",
	ScaleJoin:  " ",
	WordSep:    " ",
	ScaleSep:   " ",

	PhoneticRules: [][2]string{
		{"veinte y dos", "veintidós"},
		{"veinte y tres", "veintitrés"},
		{"veinte y seis", "veintiséis"},
		{"veinte y ", "veinti"},
		{"veintiun ", "veintiún "},
	},
}
