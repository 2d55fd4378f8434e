package utterance

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// containsPhrase reports whether phrase occurs in text. Both must already be lower-cased.
// An ASCII letter or digit at the start of phrase must not follow another one, so "hot"
// does not match inside "shot". With wholeWord the end of phrase is checked the same way,
// otherwise "americano" matches "americanos". Hangul phrases match as plain substrings.
func containsPhrase(text, phrase string, wholeWord bool) bool {
	if phrase == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)

	offset := 0
	for {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(phrase)

		leftOK := true
		if isWordRune(first) && start > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:start])
			leftOK = !isWordRune(prev)
		}
		rightOK := true
		if wholeWord && isWordRune(last) && end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			rightOK = !isWordRune(next)
		}
		if leftOK && rightOK {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func isWordRune(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// containsAny matches menu names and their phrases, which may carry a plural or other suffix.
func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(text, p, false) {
			return true
		}
	}
	return false
}

// containsAnyWord matches short vocabulary words such as "ice" or "no" only as whole words.
func containsAnyWord(text string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(text, p, true) {
			return true
		}
	}
	return false
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
