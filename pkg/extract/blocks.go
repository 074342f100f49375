package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"golang.org/x/net/html"
)

// Default languages per kind.
const (
	LanguageJavaScript = "JavaScript"
	LanguageTypeScript = "TypeScript"
	LanguageCSS        = "CSS"
	LanguageHTML       = "HTML"
)

// Block is a top-level <script> or <style> element of a component.
type Block struct {
	// Kind is KindScript or KindStyle.
	Kind Kind

	// Start and End delimit the element's content (between the tags) in the
	// document, half-open.
	Start int
	End   int

	// Attrs holds the element's attributes.
	Attrs map[string]string

	// Language is the canonical content language.
	Language string
}

// Content returns the block's content within document.
func (b Block) Content(document string) string {
	return document[b.Start:b.End]
}

// Region builds the parse region for the block.
func (b Block) Region(document string) (Region, error) {
	region, err := Extract(b.Content(document), b.Kind)
	if err != nil {
		return Region{}, err
	}
	region.Language = b.Language
	return region, nil
}

// IsModule reports whether the block is a context="module" script.
func (b Block) IsModule() bool {
	return b.Kind == KindScript && b.Attrs["context"] == "module"
}

//nolint:gochecknoglobals // Read-only lookup table.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Blocks returns the top-level script and style blocks of a component in
// document order.
func Blocks(document string) ([]Block, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(document))

	var (
		blocks []Block
		open   *Block
		offset int
		depth  int
	)

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenize component: %w", err)
			}
			break
		}

		raw := len(tokenizer.Raw())
		start := offset
		offset += raw

		switch tokenType {
		case html.StartTagToken:
			name, hasAttr := tokenizer.TagName()
			tag := string(name)
			if depth == 0 && (tag == "script" || tag == "style") {
				attrs := readAttrs(tokenizer, hasAttr)
				open = &Block{
					Kind:     Kind(tag),
					Start:    offset,
					End:      offset,
					Attrs:    attrs,
					Language: LanguageOf(Kind(tag), attrs),
				}
			}
			if !voidElements[tag] {
				depth++
			}

		case html.TextToken:
			if open != nil {
				open.End = start + raw
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if open != nil && string(open.Kind) == tag {
				blocks = append(blocks, *open)
				open = nil
			}
			if depth > 0 && !voidElements[tag] {
				depth--
			}

		default:
			// Self-closing tags, comments and doctypes do not affect nesting.
		}
	}

	if open != nil {
		return nil, fmt.Errorf("unterminated <%s> block at offset %d", open.Kind, open.Start)
	}

	return blocks, nil
}

func readAttrs(tokenizer *html.Tokenizer, more bool) map[string]string {
	attrs := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = tokenizer.TagAttr()
		attrs[string(key)] = string(val)
	}
	return attrs
}

// LanguageOf resolves a block's language from its lang or type attribute.
func LanguageOf(kind Kind, attrs map[string]string) string {
	alias := attrs["lang"]
	if alias == "" {
		alias = attrs["type"]
		if i := strings.LastIndexByte(alias, '/'); i >= 0 {
			alias = alias[i+1:]
		}
	}
	if alias != "" {
		if lang, ok := enry.GetLanguageByAlias(alias); ok {
			return lang
		}
	}
	return DefaultLanguage(kind)
}

// DefaultLanguage returns the language assumed for a kind without a lang
// attribute.
func DefaultLanguage(kind Kind) string {
	switch kind {
	case KindScript:
		return LanguageJavaScript
	case KindStyle:
		return LanguageCSS
	default:
		return LanguageHTML
	}
}
