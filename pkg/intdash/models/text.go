package models

// Lang identifies one of the two report languages.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

// Langs lists the report languages in rendering order.
var Langs = []Lang{LangEN, LangAR}

// Text is a bilingual string. Both variants are always embedded in the output.
type Text struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// T builds a Text from an English and an Arabic string.
func T(en, ar string) Text {
	return Text{EN: en, AR: ar}
}

// Same builds a Text whose variants are identical (symbols, product codes).
func Same(s string) Text {
	return Text{EN: s, AR: s}
}

// In returns the variant for lang, falling back to English.
func (t Text) In(lang Lang) string {
	if lang == LangAR && t.AR != "" {
		return t.AR
	}
	return t.EN
}
