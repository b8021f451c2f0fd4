package domain

// Language enumerates UI languages the console serves.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Theme enumerates display themes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	DefaultLanguage = LanguageEnglish
	DefaultTheme    = ThemeLight
)

// ParseLanguage validates a stored value, reporting whether it was legal.
func ParseLanguage(value string) (Language, bool) {
	switch Language(value) {
	case LanguageEnglish, LanguageArabic:
		return Language(value), true
	default:
		return DefaultLanguage, false
	}
}

// ParseTheme validates a stored value, reporting whether it was legal.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), true
	default:
		return DefaultTheme, false
	}
}

// SessionState is the single process-wide session. Role, language and
// theme are written through to the durable key-value store on every
// change and rehydrated at startup; Busy is process-local and gates the
// generative-text surface.
type SessionState struct {
	Role     Role
	Language Language
	Theme    Theme
	Busy     bool
}
