package export

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// namer converts file names to exported identifiers. It holds a Caser and
// is not safe for concurrent use.
type namer struct {
	title cases.Caser
}

func newNamer() *namer {
	return &namer{title: cases.Title(language.Und)}
}

// IconName returns the identifier exported for an SVG file: the base name
// without extension in PascalCase, prefixed with "_" when it starts with a
// digit. "arrow-up.svg" becomes "ArrowUp" and "10k.svg" becomes "_10K".
func IconName(file string) string {
	return newNamer().name(file)
}

func (n *namer) name(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, word := range splitWords(base) {
		b.WriteString(n.title.String(strings.ToLower(word)))
	}

	name := []rune(b.String())
	for i := 1; i < len(name); i++ {
		if unicode.IsDigit(name[i-1]) && unicode.IsLetter(name[i]) {
			name[i] = unicode.ToUpper(name[i])
		}
	}

	if len(name) > 0 && unicode.IsDigit(name[0]) {
		return "_" + string(name)
	}
	return string(name)
}

// splitWords splits on separators and camel-case boundaries.
// "XMLHttp-request" yields XML, Http, request.
func splitWords(s string) []string {
	var (
		words []string
		word  []rune
	)
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		word = append(word, r)
	}
	flush()

	return words
}
