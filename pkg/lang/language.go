package lang

// Language is an output language code for generated artifacts
type Language string

const (
	English  Language = "en"
	Chinese  Language = "zh"
	Japanese Language = "ja"
	Korean   Language = "ko"
	Spanish  Language = "es"
	German   Language = "de"
)

// String returns the language code
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is one of the supported codes
func (l Language) IsValid() bool {
	switch l {
	case English, Chinese, Japanese, Korean, Spanish, German:
		return true
	default:
		return false
	}
}

// DisplayName returns the English display name used in prompts
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case Chinese:
		return "Chinese"
	case Japanese:
		return "Japanese"
	case Korean:
		return "Korean"
	case Spanish:
		return "Spanish"
	case German:
		return "German"
	default:
		return string(l)
	}
}

// Default returns the default output language
func Default() Language {
	return English
}

// Parse parses a string into a Language, falling back to the default
// for unrecognized codes
func Parse(s string) Language {
	l := Language(s)
	if l.IsValid() {
		return l
	}
	return Default()
}
