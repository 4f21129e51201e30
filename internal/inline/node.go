package inline

import (
	"errors"
	"fmt"

	"github.com/gerunddev/sitegen/internal/htmlnode"
)

// ErrUnknownKind is returned for a span kind with no HTML mapping
var ErrUnknownKind = errors.New("unknown span kind")

// ToNode maps a span to the leaf that renders it
func ToNode(s Span) (htmlnode.Node, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.Text(s.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attribute{Key: "href", Val: s.URL}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attribute{Key: "src", Val: s.URL},
			htmlnode.Attribute{Key: "alt", Val: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("%s: %w", s.Kind, ErrUnknownKind)
	}
}

// ToNodes maps spans to nodes, keeping order
func ToNodes(spans []Span) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := ToNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
