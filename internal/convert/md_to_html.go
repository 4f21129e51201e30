// Package convert compiles markdown documents into htmlnode trees.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gerunddev/sitegen/internal/block"
	"github.com/gerunddev/sitegen/internal/htmlnode"
)

// ErrNoTitle is returned when a document has no level 1 heading
var ErrNoTitle = errors.New("no title found in markdown")

// MarkdownToHTMLNode compiles a whole document into a single div.
// The first block that fails to compile aborts the document.
func MarkdownToHTMLNode(markdown string) (*htmlnode.Parent, error) {
	blocks := block.Segment(markdown)
	nodes := make([]htmlnode.Node, 0, len(blocks))

	for i, b := range blocks {
		kind := block.Classify(b)
		node, err := BlockToHTMLNode(b, kind)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, kind, err)
		}
		nodes = append(nodes, node)
	}

	return htmlnode.NewParent("div", nodes), nil
}

// MarkdownToHTML compiles and renders markdown in one step
func MarkdownToHTML(markdown string) (string, error) {
	root, err := MarkdownToHTMLNode(markdown)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// ExtractTitle returns the text of the first block starting with "# ".
// Only the literal prefix is checked; blocks are not classified.
func ExtractTitle(markdown string) (string, error) {
	for _, b := range block.Segment(markdown) {
		if title, ok := strings.CutPrefix(b, "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", ErrNoTitle
}
