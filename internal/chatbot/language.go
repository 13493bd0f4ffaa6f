package chatbot

import "strings"

// Language selects the response table and the news feed. Unknown values fall
// back to English.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangKannada Language = "kn"
)

// ParseLanguage normalizes a language code, defaulting to English.
func ParseLanguage(value string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(value))) {
	case LangHindi:
		return LangHindi
	case LangKannada:
		return LangKannada
	default:
		return LangEnglish
	}
}
