package strcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitWords breaks an identifier into words. Word boundaries are
// non-alphanumeric characters, lower-to-upper transitions ("fooBar") and the
// last letter of an upper-case run followed by a lower-case letter
// ("HTTPServer" -> "HTTP", "Server").
func SplitWords(s string) []string {
	runes := []rune(strings.TrimSpace(s))

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

// ToPascalCase converts an identifier in any convention to PascalCase.
// Upper-case runs such as "ID" are kept intact.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range SplitWords(s) {
		b.WriteString(UpperFirst(w))
	}
	return b.String()
}

// ToCamelCase converts an identifier in any convention to camelCase.
func ToCamelCase(s string) string {
	return LowerFirst(ToPascalCase(s))
}

// ToSnakeCase converts an identifier in any convention to snake_case.
func ToSnakeCase(s string) string {
	words := SplitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// HasUpperAt reports whether the rune starting at byte offset i is an
// upper-case letter.
func HasUpperAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsUpper(r)
}

// Humanize turns an identifier into lower-case space separated words.
// Upper-case runs (acronyms) are preserved: "NullOrUUID" -> "null or UUID".
func Humanize(s string) string {
	lower := cases.Lower(language.English)
	words := SplitWords(s)
	for i, w := range words {
		if len([]rune(w)) > 1 && strings.ToUpper(w) == w {
			continue
		}
		words[i] = lower.String(w)
	}
	return strings.Join(words, " ")
}

// Title returns s with the first letter of every word upper-cased.
func Title(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}

// SameIdentifier compares two identifiers ignoring case and naming
// convention, so "first_name", "firstName" and "FirstName" are equal.
func SameIdentifier(a, b string) bool {
	return strings.EqualFold(strings.Join(SplitWords(a), ""), strings.Join(SplitWords(b), ""))
}

// JoinOr joins items as an English alternative list: "a, b or c".
func JoinOr(items []string) string {
	return joinWith(items, "or")
}

// JoinAnd joins items as an English list: "a, b and c".
func JoinAnd(items []string) string {
	return joinWith(items, "and")
}

func joinWith(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conj + " " + items[len(items)-1]
}
