// Package naming derives default slugs and namespaces from a plugin name.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// Separator joins slug words.
	Separator = '-'
	// NamespaceSeparator joins namespace segments.
	NamespaceSeparator = `\`
)

// Slugify converts a free text name to a slug.
//
// The name is lower-cased, runs of whitespace, hyphens and underscores become a
// single Separator, every other rune that is not a letter or digit is dropped,
// and leading or trailing separators are trimmed. Slugify is idempotent.
func Slugify(title string) string {
	title = cases.Lower(language.Und).String(norm.NFC.String(title))

	var b strings.Builder
	b.Grow(len(title))
	pending := false
	for _, r := range title {
		switch {
		case r == Separator || r == '_' || unicode.IsSpace(r):
			pending = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if pending {
				b.WriteRune(Separator)
				pending = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Namespace builds a hierarchical namespace from a name: the first letter of
// every whitespace separated word is upper-cased and the words are joined with
// NamespaceSeparator. The rest of each word, hyphenated parts included, is left
// as typed.
func Namespace(name string) string {
	upper := cases.Upper(language.Und)
	words := strings.Fields(name)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return strings.Join(words, NamespaceSeparator)
}

// EscapeNamespace quotes a namespace for embedding in a JSON string the way
// composer.json stores PSR-4 prefixes: backslashes, quotes and NUL bytes are
// prefixed with a backslash.
func EscapeNamespace(ns string) string {
	var b strings.Builder
	b.Grow(len(ns) * 2)
	for _, r := range ns {
		switch r {
		case '\\', '\'', '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
