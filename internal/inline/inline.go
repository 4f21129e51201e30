// Package inline splits a run of markdown text into typed spans.
//
// Lexing is flat: bold, italic, code, images and links are each extracted by
// a separate pass over spans that are still plain. Styles do not nest, so a
// link inside bold text stays part of the bold span.
package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnbalancedDelimiter is returned when a style delimiter has no partner
var ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")

// SpanKind is the formatting applied to a span
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// Span is a contiguous run of text with one kind.
// URL is only set for Link and Image spans.
type Span struct {
	Text string
	Kind SpanKind
	URL  string
}

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("%s(%q, %s)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}

// Ref is the (text, url) pair of a markdown image or link
type Ref struct {
	Text string
	URL  string
}

var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Lex converts text into an ordered list of spans
func Lex(text string) ([]Span, error) {
	spans := []Span{{Text: text, Kind: Plain}}

	var err error
	if spans, err = SplitDelimiter(spans, "**", Bold); err != nil {
		return nil, err
	}
	if spans, err = SplitDelimiter(spans, "*", Italic); err != nil {
		return nil, err
	}
	if spans, err = SplitDelimiter(spans, "`", Code); err != nil {
		return nil, err
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every plain span on delim. Text between a pair of
// delimiters becomes kind; empty pieces are dropped. Non-plain spans pass
// through untouched.
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}

		parts := strings.Split(span.Text, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%q in %q: %w", delim, span.Text, ErrUnbalancedDelimiter)
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				result = append(result, Span{Text: part, Kind: span.Kind})
			} else {
				result = append(result, Span{Text: part, Kind: kind})
			}
		}
	}
	return result, nil
}

// ExtractImages returns every ![alt](url) in text, left to right
func ExtractImages(text string) []Ref {
	return extractRefs(imagePattern, text)
}

// ExtractLinks returns every [text](url) in text, left to right
func ExtractLinks(text string) []Ref {
	return extractRefs(linkPattern, text)
}

func extractRefs(re *regexp.Regexp, text string) []Ref {
	matches := re.FindAllStringSubmatch(text, -1)
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{Text: m[1], URL: m[2]})
	}
	return refs
}

// SplitImages pulls image spans out of plain spans
func SplitImages(spans []Span) []Span {
	return splitRefs(spans, imagePattern, Image)
}

// SplitLinks pulls link spans out of plain spans
func SplitLinks(spans []Span) []Span {
	return splitRefs(spans, linkPattern, Link)
}

func splitRefs(spans []Span, re *regexp.Regexp, kind SpanKind) []Span {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}

		text := span.Text
		rest := 0
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if lead := text[rest:loc[0]]; lead != "" {
				result = append(result, Span{Text: lead, Kind: Plain})
			}
			result = append(result, Span{
				Text: text[loc[2]:loc[3]],
				Kind: kind,
				URL:  text[loc[4]:loc[5]],
			})
			rest = loc[1]
		}
		if tail := text[rest:]; tail != "" {
			result = append(result, Span{Text: tail, Kind: span.Kind, URL: span.URL})
		}
	}
	return result
}
