package export

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// strippedAttrs are removed from every <svg> element so icons inherit size
// and styling from the component that renders them.
//
//nolint:gochecknoglobals // Read-only lookup table.
var strippedAttrs = map[string]bool{
	"class":  true,
	"style":  true,
	"width":  true,
	"height": true,
}

// CleanSVG parses an SVG document, drops comments and the class, style,
// width and height attributes of <svg> elements, and returns the markup.
// XML declarations and doctypes are dropped.
func CleanSVG(source string) (string, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("parse svg: %w", err)
	}

	body := findBody(doc)
	if body == nil {
		return "", nil
	}
	clean(body)

	var out strings.Builder
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&out, child); err != nil {
			return "", fmt.Errorf("render svg: %w", err)
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if body := findBody(child); body != nil {
			return body
		}
	}
	return nil
}

func clean(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.CommentNode {
			n.RemoveChild(child)
		} else {
			clean(child)
		}
		child = next
	}

	if n.Type != html.ElementNode || n.DataAtom != atom.Svg {
		return
	}
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if attr.Namespace == "" && strippedAttrs[attr.Key] {
			continue
		}
		kept = append(kept, attr)
	}
	n.Attr = kept
}
