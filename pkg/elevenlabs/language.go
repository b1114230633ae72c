package elevenlabs

import "strings"

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Languages supported by the multilingual and turbo speech models
	codeLanguage = map[string]string{
		"ar":  "arabic",
		"bg":  "bulgarian",
		"cs":  "czech",
		"da":  "danish",
		"de":  "german",
		"el":  "greek",
		"en":  "english",
		"es":  "spanish",
		"fi":  "finnish",
		"fil": "filipino",
		"fr":  "french",
		"hi":  "hindi",
		"hr":  "croatian",
		"hu":  "hungarian",
		"id":  "indonesian",
		"it":  "italian",
		"ja":  "japanese",
		"ko":  "korean",
		"ms":  "malay",
		"nl":  "dutch",
		"no":  "norwegian",
		"pl":  "polish",
		"pt":  "portuguese",
		"ro":  "romanian",
		"ru":  "russian",
		"sk":  "slovak",
		"sv":  "swedish",
		"ta":  "tamil",
		"tr":  "turkish",
		"uk":  "ukrainian",
		"vi":  "vietnamese",
		"zh":  "chinese",
	}
	languageCode = make(map[string]string, len(codeLanguage))
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func init() {
	for code, language := range codeLanguage {
		languageCode[language] = code
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LanguageCode returns the language and ISO 639-1 code for a language name
// or code, or empty strings if the language is not supported for speech
// synthesis.
func LanguageCode(language string) (string, string) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language_, ok := codeLanguage[language]; ok {
		return language_, language
	}
	if code, ok := languageCode[language]; ok {
		return language, code
	}
	return "", ""
}
