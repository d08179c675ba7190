package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSeparator reports whether r separates words: hyphen, underscore or whitespace.
func isSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// isAcronymRune reports whether r can be part of an acronym run.
func isAcronymRune(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

// IsUpperToken reports whether s contains at least one cased rune and no
// lowercase or titlecase runes.
// Example: "HTTP" -> true, "API_V2" -> true, "Http" -> false, "123" -> false
func IsUpperToken(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// IsNumericToken reports whether s is non-empty and made only of numeric runes.
func IsNumericToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// IsFixedPoint reports whether s is left untouched by both Camelize and Decamelize.
func IsFixedPoint(s string) bool {
	return IsUpperToken(s) || IsNumericToken(s)
}

// Camelize converts a string to camelCase.
// A separator run between two words is removed and the next letter upper-cased.
// The first letter is lower-cased unless the string opens with an acronym.
// Leading and trailing separators are kept.
// Example: "hello-world_test" -> "helloWorldTest"
// Example: "HTTPServer" -> "HTTPServer"
func Camelize(s string) string {
	if IsFixedPoint(s) {
		return s
	}

	runes := []rune(s)
	if len(runes) > 0 && !IsUpperToken(string(runes[:min(2, len(runes))])) {
		runes[0] = unicode.ToLower(runes[0])
	}

	upper := cases.Upper(language.Und)
	var result strings.Builder
	result.Grow(len(s))

	for i := 0; i < len(runes); {
		r := runes[i]
		if !isSeparator(r) || i == 0 || isSeparator(runes[i-1]) {
			result.WriteRune(r)
			i++
			continue
		}

		j := i
		for j < len(runes) && isSeparator(runes[j]) {
			j++
		}
		if j == len(runes) {
			// trailing separators have no word to join
			result.WriteString(string(runes[i:]))
			break
		}
		result.WriteString(upper.String(string(runes[j])))
		i = j + 1
	}

	return result.String()
}

// RepairAcronyms title-cases runs of uppercase letters and digits so that
// acronyms split as one word. A run that stops before the end of the string
// keeps its last rune as-is, since that rune opens the next word.
// Example: "APIResponse" -> "ApiResponse"
// Example: "userID" -> "userId"
func RepairAcronyms(s string) string {
	runes := []rune(s)

	var result strings.Builder
	result.Grow(len(s))

	for i := 0; i < len(runes); {
		if !isAcronymRune(runes[i]) {
			result.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && isAcronymRune(runes[j]) {
			j++
		}
		end := j
		if j < len(runes) {
			end = j - 1
		}
		result.WriteString(titleRunes(runes[i:end]))
		result.WriteString(string(runes[end:j]))
		i = j
	}

	return result.String()
}

// titleRunes upper-cases letters that follow a non-letter and lower-cases the rest.
func titleRunes(runes []rune) string {
	var result strings.Builder
	prevLetter := false
	for _, r := range runes {
		if prevLetter {
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(unicode.ToUpper(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return result.String()
}

// SplitWords breaks s into words at separator runs and before uppercase letters.
// Separator runs at either end are returned separately and are not words.
// Example: "_userName" -> "_", ["user", "Name"], ""
func SplitWords(s string) (lead string, words []string, trail string) {
	runes := []rune(s)

	start := 0
	for start < len(runes) && isSeparator(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && isSeparator(runes[end-1]) {
		end--
	}

	var word []rune
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	for _, r := range runes[start:end] {
		switch {
		case isSeparator(r):
			flush()
		case unicode.IsUpper(r):
			flush()
			word = append(word, r)
		default:
			word = append(word, r)
		}
	}
	flush()

	return string(runes[:start]), words, string(runes[end:])
}

// Decamelize converts a string to snake_case.
// Acronyms are repaired first so they become a single word, then words are
// joined with one underscore and the result is lower-cased.
// Example: "APIResponse" -> "api_response"
// Example: "hello-World" -> "hello_world"
func Decamelize(s string) string {
	if IsFixedPoint(s) {
		return s
	}

	lead, words, trail := SplitWords(RepairAcronyms(s))
	return cases.Lower(language.Und).String(lead + strings.Join(words, "_") + trail)
}
