package slugify

// preTranslations maps codepoints whose generic transliteration is
// unsatisfying to a conventional romanization, e.g. "ü" becomes "ue" instead
// of "u". The list is ordered; earlier rules win over later ones because
// each rule rescans the previous rule's output.
var preTranslations = []Replacement{
	{"Ю", "U"},
	{"Щ", "Sch"},
	{"У", "Y"},
	{"Х", "H"},
	{"Я", "Ya"},
	{"Ё", "E"},
	{"ё", "e"},
	{"я", "ya"},
	{"х", "h"},
	{"у", "y"},
	{"щ", "sch"},
	{"ю", "u"},
	{"Ü", "Ue"},
	{"Ö", "Oe"},
	{"Ä", "Ae"},
	{"ä", "ae"},
	{"ö", "oe"},
	{"ü", "ue"},
	{"Ϋ́", "Y"},
	{"Ϋ", "Y"},
	{"Ύ", "Y"},
	{"Υ", "Y"},
	{"Χ", "Ch"},
	{"χ", "ch"},
	{"Ξ", "X"},
	{"ϒ", "Y"},
	{"υ", "y"},
	{"ύ", "y"},
	{"ϋ", "y"},
	{"ΰ", "y"},
}

// PreTransliterate applies the conventional romanizations for German
// umlauts and a handful of Cyrillic and Greek letters. It is meant to run on
// the raw text before Slugify for callers who prefer "ueber" over "uber".
func PreTransliterate(text string) string {
	return applyReplacements(text, preTranslations)
}
