package convert

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/sitegen/internal/block"
	"github.com/gerunddev/sitegen/internal/htmlnode"
	"github.com/gerunddev/sitegen/internal/inline"
)

func TestMarkdownToHTMLFixture(t *testing.T) {
	md, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("Failed to read markdown fixture: %v", err)
	}
	expected, err := os.ReadFile("testdata/sample.html")
	if err != nil {
		t.Fatalf("Failed to read html fixture: %v", err)
	}

	actual, err := MarkdownToHTML(string(md))
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(string(expected), "\n"), actual)
}

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading and bold paragraph",
			input: "# Title\n\nHello **world**",
			want:  "<div><h1>Title</h1><p>Hello <b>world</b></p></div>",
		},
		{
			name:  "bare code block",
			input: "```\ncode here\n```",
			want:  "<div><pre><code>code here</code></pre></div>",
		},
		{
			name:  "code keeps markdown literal",
			input: "```python\nx = a * b  # `tick`\n```",
			want:  "<div><pre><code class=\"language-python\">x = a * b  # `tick`</code></pre></div>",
		},
		{
			name:  "code keeps inner blank lines",
			input: "```\na\n\nb\n```",
			want:  "<div><pre><code>a\n\nb</code></pre></div>",
		},
		{
			name:  "single line code",
			input: "```print('Hello world!')```",
			want:  "<div><pre><code>print('Hello world!')</code></pre></div>",
		},
		{
			name:  "ordered list",
			input: "1. x\n2. **y**",
			want:  "<div><ol><li>x</li><li><b>y</b></li></ol></div>",
		},
		{
			name:  "dash list",
			input: "- a [link](/l)\n- b",
			want:  `<div><ul><li>a <a href="/l">link</a></li><li>b</li></ul></div>`,
		},
		{
			name:  "single quote line",
			input: "> be *brave*",
			want:  "<div><blockquote>be <i>brave</i></blockquote></div>",
		},
		{
			name:  "multi line quote",
			input: "> one\n> two",
			want:  "<div><blockquote><p>one</p><p>two</p></blockquote></div>",
		},
		{
			name:  "heading levels",
			input: "### Third\n\n###### Sixth",
			want:  "<div><h3>Third</h3><h6>Sixth</h6></div>",
		},
		{
			name:  "heading with hashes in text",
			input: "## C# and F#",
			want:  "<div><h2>C# and F#</h2></div>",
		},
		{
			name:  "image paragraph",
			input: "![cat](/img/cat.png)",
			want:  `<div><p><img src="/img/cat.png" alt="cat"></img></p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdownToHTMLNodeShape(t *testing.T) {
	markdown := `
        # This is a heading

        This is a paragraph of text. It has some **bold** and *italic* words inside of it.

        * first element
        * second element
        * third element
        `

	got, err := MarkdownToHTMLNode(markdown)
	require.NoError(t, err)

	want := htmlnode.NewParent("div", []htmlnode.Node{
		htmlnode.NewLeaf("h1", "This is a heading"),
		htmlnode.NewParent("p", []htmlnode.Node{
			htmlnode.Text("This is a paragraph of text. It has some "),
			htmlnode.NewLeaf("b", "bold"),
			htmlnode.Text(" and "),
			htmlnode.NewLeaf("i", "italic"),
			htmlnode.Text(" words inside of it."),
		}),
		htmlnode.NewParent("ul", []htmlnode.Node{
			htmlnode.NewLeaf("li", "first element"),
			htmlnode.NewLeaf("li", "second element"),
			htmlnode.NewLeaf("li", "third element"),
		}),
	})
	assert.Equal(t, want, got)
}

func TestBlockToHTMLNodeLeafShortcut(t *testing.T) {
	tests := []struct {
		name  string
		block string
		kind  block.Kind
		want  htmlnode.Node
	}{
		{
			name:  "plain heading is a leaf",
			block: "# Plain",
			kind:  block.Heading,
			want:  htmlnode.NewLeaf("h1", "Plain"),
		},
		{
			name:  "styled heading is a parent",
			block: "# **Bold**",
			kind:  block.Heading,
			want:  htmlnode.NewParent("h1", []htmlnode.Node{htmlnode.NewLeaf("b", "Bold")}),
		},
		{
			name:  "plain paragraph",
			block: "just text",
			kind:  block.Paragraph,
			want:  htmlnode.NewLeaf("p", "just text"),
		},
		{
			name:  "single code span still wraps",
			block: "`x`",
			kind:  block.Paragraph,
			want:  htmlnode.NewParent("p", []htmlnode.Node{htmlnode.NewLeaf("code", "x")}),
		},
		{
			name:  "quote lines",
			block: "> plain\n> *it*",
			kind:  block.Quote,
			want: htmlnode.NewParent("blockquote", []htmlnode.Node{
				htmlnode.NewLeaf("p", "plain"),
				htmlnode.NewParent("p", []htmlnode.Node{htmlnode.NewLeaf("i", "it")}),
			}),
		},
		{
			name:  "code with language",
			block: "```go\nx := 1\n```",
			kind:  block.Code,
			want: htmlnode.NewParent("pre", []htmlnode.Node{
				htmlnode.NewLeaf("code", "x := 1", htmlnode.Attribute{Key: "class", Val: "language-go"}),
			}),
		},
		{
			name:  "line without a space is taken whole",
			block: "* a\n-",
			kind:  block.UnorderedList,
			want: htmlnode.NewParent("ul", []htmlnode.Node{
				htmlnode.NewLeaf("li", "a"),
				htmlnode.NewLeaf("li", "-"),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BlockToHTMLNode(tt.block, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeStripsOnlyOneNewline(t *testing.T) {
	node, err := BlockToHTMLNode("```\n\n  indented\n\n```", block.Code)
	require.NoError(t, err)

	html, err := node.Render()
	require.NoError(t, err)
	assert.Equal(t, "<pre><code>\n  indented\n</code></pre>", html)
}

func TestMarkdownToHTMLNodeFailsFast(t *testing.T) {
	_, err := MarkdownToHTMLNode("# Fine\n\nbroken **bold\n\nnever reached")
	assert.ErrorIs(t, err, inline.ErrUnbalancedDelimiter)
	assert.Contains(t, err.Error(), "block 2")
}

func TestMarkdownToHTMLEmptyDocument(t *testing.T) {
	root, err := MarkdownToHTMLNode("\n\n")
	require.NoError(t, err)

	_, err = root.Render()
	assert.ErrorIs(t, err, htmlnode.ErrEmptyChildren)
}

func TestMarkdownToHTMLIsStable(t *testing.T) {
	md := "# T\n\n> q\n\n* a\n* *b*"
	first, err := MarkdownToHTML(md)
	require.NoError(t, err)
	second, err := MarkdownToHTML(md)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "title after body",
			input: "Body\n\n# The Title\n\nMore",
			want:  "The Title",
		},
		{
			name:  "indented document",
			input: "\n        # This is a heading\n\n        text\n        ",
			want:  "This is a heading",
		},
		{
			name:  "surrounding space trimmed",
			input: "#    Spaced   ",
			want:  "Spaced",
		},
		{
			name:  "level 2 is skipped",
			input: "## Sub\n\n# Main",
			want:  "Main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.input)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("ExtractTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTitleMissing(t *testing.T) {
	_, err := ExtractTitle("No heading here")
	assert.ErrorIs(t, err, ErrNoTitle)

	_, err = ExtractTitle("## Only a subheading\n\n* list")
	assert.ErrorIs(t, err, ErrNoTitle)
}
