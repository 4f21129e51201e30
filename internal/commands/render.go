package commands

import (
	"fmt"

	"github.com/gerunddev/sitegen/internal/convert"
)

// Render prints the HTML for a single markdown file
func Render(args []string) {
	md, err := readMarkdownArg(args)
	if err != nil {
		fail("Error reading input", err)
	}

	out, err := convert.MarkdownToHTML(md)
	if err != nil {
		fail("Error rendering markdown", err)
	}
	fmt.Println(out)
}

// Title prints the title of a single markdown file
func Title(args []string) {
	md, err := readMarkdownArg(args)
	if err != nil {
		fail("Error reading input", err)
	}

	title, err := convert.ExtractTitle(md)
	if err != nil {
		fail("Error extracting title", err)
	}
	fmt.Println(title)
}
