// Package block splits a markdown document into blocks and classifies them.
package block

import (
	"fmt"
	"regexp"
	"strings"
)

// Fence opens and closes a code block
const Fence = "```"

// Kind is the structural type of a block
type Kind int

const (
	Paragraph Kind = iota
	Heading
	Quote
	Code
	UnorderedList
	OrderedList
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Quote:
		return "quote"
	case Code:
		return "code"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	headingPattern       = regexp.MustCompile(`^#{1,6} `)
	unorderedListPattern = regexp.MustCompile(`^[*-] \S`)
	orderedListPattern   = regexp.MustCompile(`^\d+\. \S`)
)

// Segment splits doc into blocks separated by blank lines. Lines of normal
// blocks are trimmed; a block opened by a fence keeps its lines verbatim,
// blank ones included, until a line that is exactly the fence.
func Segment(doc string) []string {
	doc = normalizeNewlines(doc)

	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(doc, "\n") {
		if len(current) > 0 && strings.HasPrefix(current[0], Fence) {
			current = append(current, line)
			if line == Fence {
				flush()
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()

	return blocks
}

// Classify returns the kind of a single block. Checks run in a fixed order
// and the first match wins.
func Classify(block string) Kind {
	switch {
	case headingPattern.MatchString(block):
		return Heading
	case isFenced(block):
		return Code
	case isQuote(block):
		return Quote
	case unorderedListPattern.MatchString(firstLine(block)):
		return UnorderedList
	case orderedListPattern.MatchString(firstLine(block)):
		return OrderedList
	default:
		return Paragraph
	}
}

// isFenced reports whether block opens and closes with a fence
func isFenced(block string) bool {
	return len(block) >= 2*len(Fence) &&
		strings.HasPrefix(block, Fence) &&
		strings.HasSuffix(block, Fence)
}

func isQuote(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, ">") {
			return false
		}
	}
	return true
}

func firstLine(block string) string {
	line, _, _ := strings.Cut(block, "\n")
	return line
}

// normalizeNewlines replaces CRLF and lone CR with LF
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
