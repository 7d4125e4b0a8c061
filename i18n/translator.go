package i18n

import "fmt"

// Translator retrieves localized messages for error codes. data provides
// optional metadata to embed in the message (for example, "expected" or
// "received").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "REQUIRED":
			return "必須フィールドです"
		case "INVALID_TYPE":
			return fmt.Sprintf("%s 型が必要ですが %s 型が渡されました", data["expected"], data["received"])
		case "INVALID_FORMAT":
			return "形式が不正です"
		case "UNKNOWN":
			return "検証エラー"
		}
	default: // "en"
		switch code {
		case "REQUIRED":
			return "Field is required"
		case "INVALID_TYPE":
			return fmt.Sprintf("Expected %s but received %s", data["expected"], data["received"])
		case "INVALID_FORMAT":
			return "Invalid format"
		case "UNKNOWN":
			return "Validation failed"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
