package convert

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gerunddev/sitegen/internal/block"
	"github.com/gerunddev/sitegen/internal/htmlnode"
	"github.com/gerunddev/sitegen/internal/inline"
)

var langPattern = regexp.MustCompile(`^\w*`)

// BlockToHTMLNode compiles one block of the given kind
func BlockToHTMLNode(b string, kind block.Kind) (htmlnode.Node, error) {
	switch kind {
	case block.Heading:
		return headingToHTMLNode(b)
	case block.Code:
		return codeToHTMLNode(b), nil
	case block.Quote:
		return quoteToHTMLNode(b)
	case block.UnorderedList, block.OrderedList:
		return listToHTMLNode(b)
	case block.Paragraph:
		return spansToHTMLNode("p", b)
	default:
		return nil, fmt.Errorf("unsupported block kind %s", kind)
	}
}

// # Heading → <h1>Heading</h1>
func headingToHTMLNode(b string) (htmlnode.Node, error) {
	level := 0
	for level < len(b) && b[level] == '#' {
		level++
	}
	text := strings.TrimPrefix(b[level:], " ")
	return spansToHTMLNode(fmt.Sprintf("h%d", level), text)
}

// ```lang
// code
// ``` → <pre><code class="language-lang">code</code></pre>
func codeToHTMLNode(b string) htmlnode.Node {
	body := strings.TrimPrefix(b, block.Fence)
	body = strings.TrimSuffix(body, block.Fence)

	// a tag is only read from an opening line of its own
	lang := ""
	if strings.Contains(body, "\n") {
		lang = langPattern.FindString(body)
		body = body[len(lang):]
	}

	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimSuffix(body, "\n")

	var attrs []htmlnode.Attribute
	if lang != "" {
		attrs = append(attrs, htmlnode.Attribute{Key: "class", Val: "language-" + lang})
	}

	return htmlnode.NewParent("pre", []htmlnode.Node{
		htmlnode.NewLeaf("code", body, attrs...),
	})
}

// > one line → <blockquote>one line</blockquote>
// > a
// > b → <blockquote><p>a</p><p>b</p></blockquote>
func quoteToHTMLNode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	quotes := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimPrefix(line, ">")
		quotes = append(quotes, strings.TrimPrefix(line, " "))
	}

	if len(quotes) == 1 {
		return spansToHTMLNode("blockquote", quotes[0])
	}

	children := make([]htmlnode.Node, 0, len(quotes))
	for _, q := range quotes {
		p, err := spansToHTMLNode("p", q)
		if err != nil {
			return nil, err
		}
		children = append(children, p)
	}
	return htmlnode.NewParent("blockquote", children), nil
}

// * a / 1. a → <ul><li>a</li></ul> / <ol><li>a</li></ol>
func listToHTMLNode(b string) (htmlnode.Node, error) {
	lines := strings.Split(b, "\n")

	tag := "ul"
	if first := strings.TrimSpace(lines[0]); first != "" && unicode.IsDigit(rune(first[0])) {
		tag = "ol"
	}

	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		content := line
		if _, rest, found := strings.Cut(line, " "); found {
			content = rest
		}
		item, err := spansToHTMLNode("li", strings.TrimSpace(content))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}

// spansToHTMLNode lexes text into the children of tag. Text that lexes to a
// single plain span, or to nothing, becomes a leaf holding the raw text.
func spansToHTMLNode(tag, text string) (htmlnode.Node, error) {
	spans, err := inline.Lex(text)
	if err != nil {
		return nil, err
	}

	if len(spans) == 0 || (len(spans) == 1 && spans[0].Kind == inline.Plain) {
		return htmlnode.NewLeaf(tag, text), nil
	}

	children, err := inline.ToNodes(spans)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}
