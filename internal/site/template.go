// Package site turns a directory of markdown pages into an HTML site.
package site

import "strings"

// Template placeholders
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// RenderTemplate fills the first title and content placeholders and points
// root-relative href and src attributes at basePath.
func RenderTemplate(template, title, content, basePath string) string {
	page := strings.Replace(template, TitlePlaceholder, title, 1)
	page = strings.Replace(page, ContentPlaceholder, content, 1)

	if basePath != "" && basePath != "/" {
		page = strings.ReplaceAll(page, `href="/`, `href="`+basePath)
		page = strings.ReplaceAll(page, `src="/`, `src="`+basePath)
	}
	return page
}
