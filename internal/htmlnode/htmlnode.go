// Package htmlnode is the minimal HTML tree the markdown compiler builds.
// A tree is built bottom-up and never mutated once constructed.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingValue is returned when a leaf has no value at render time
	ErrMissingValue = errors.New("leaf node has no value")
	// ErrMissingTag is returned when a parent has no tag
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrEmptyChildren is returned when a parent has no children
	ErrEmptyChildren = errors.New("parent node must have at least one child")
)

// Node is either a *Leaf or a *Parent.
type Node interface {
	// Render returns the HTML for the node and everything below it
	Render() (string, error)

	render(b *strings.Builder) error
}

// Attribute is a single key="val" pair on an element
type Attribute struct {
	Key string
	Val string
}

// Attributes keeps insertion order so output is deterministic
type Attributes []Attribute

// Render joins the attributes as key="val" pairs separated by single spaces
func (a Attributes) Render() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a))
	for _, attr := range a {
		parts = append(parts, attr.Key+`="`+attr.Val+`"`)
	}
	return strings.Join(parts, " ")
}

// Get returns the value for key and whether it was set
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Leaf is text content or an element without child elements.
// An empty Tag renders the value as bare text.
type Leaf struct {
	Tag   string
	Value *string
	Attrs Attributes
}

// Parent is an element that owns an ordered list of children
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// Text creates an untagged leaf holding plain text
func Text(value string) *Leaf {
	return &Leaf{Value: &value}
}

// NewLeaf creates a tagged leaf
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrsOrNil(attrs)}
}

// NewParent creates a parent element owning children
func NewParent(tag string, children []Node, attrs ...Attribute) *Parent {
	return &Parent{Tag: tag, Children: children, Attrs: attrsOrNil(attrs)}
}

func attrsOrNil(attrs []Attribute) Attributes {
	if len(attrs) == 0 {
		return nil
	}
	return Attributes(attrs)
}

// Render satisfies Node
func (l *Leaf) Render() (string, error) {
	var b strings.Builder
	if err := l.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) render(b *strings.Builder) error {
	if l.Value == nil {
		if l.Tag != "" {
			return fmt.Errorf("<%s>: %w", l.Tag, ErrMissingValue)
		}
		return ErrMissingValue
	}
	if l.Tag == "" {
		b.WriteString(*l.Value)
		return nil
	}
	openTag(b, l.Tag, l.Attrs)
	b.WriteString(*l.Value)
	closeTag(b, l.Tag)
	return nil
}

// Render satisfies Node
func (p *Parent) Render() (string, error) {
	var b strings.Builder
	if err := p.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) render(b *strings.Builder) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("<%s>: %w", p.Tag, ErrEmptyChildren)
	}
	openTag(b, p.Tag, p.Attrs)
	for _, child := range p.Children {
		if err := child.render(b); err != nil {
			return fmt.Errorf("<%s>: %w", p.Tag, err)
		}
	}
	closeTag(b, p.Tag)
	return nil
}

func openTag(b *strings.Builder, tag string, attrs Attributes) {
	b.WriteByte('<')
	b.WriteString(tag)
	if rendered := attrs.Render(); rendered != "" {
		b.WriteByte(' ')
		b.WriteString(rendered)
	}
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
