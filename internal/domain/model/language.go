package model

type Language string

const (
	LanguageJava Language = "JAVA"
	LanguageCpp  Language = "CPP"
)

// DefaultLanguage is what the backend falls back to when a submission
// arrives without one.
const DefaultLanguage = LanguageJava

func (l Language) Known() bool {
	return l == LanguageJava || l == LanguageCpp
}
