package site

import "testing"

func TestRenderTemplate(t *testing.T) {
	const tmpl = `<html><head><title>{{ Title }}</title><link href="/index.css"></head>` +
		`<body>{{ Content }}<img src="/logo.png"><a href="https://go.dev">x</a></body></html>`

	tests := []struct {
		name     string
		template string
		basePath string
		want     string
	}{
		{
			name:     "root base path",
			template: tmpl,
			basePath: "/",
			want: `<html><head><title>Home</title><link href="/index.css"></head>` +
				`<body><div><p>hi</p></div><img src="/logo.png"><a href="https://go.dev">x</a></body></html>`,
		},
		{
			name:     "sub path base",
			template: tmpl,
			basePath: "/blog/",
			want: `<html><head><title>Home</title><link href="/blog/index.css"></head>` +
				`<body><div><p>hi</p></div><img src="/blog/logo.png"><a href="https://go.dev">x</a></body></html>`,
		},
		{
			name:     "only first placeholder replaced",
			template: "{{ Title }} {{ Title }} {{ Content }} {{ Content }}",
			basePath: "/",
			want:     "Home {{ Title }} <div><p>hi</p></div> {{ Content }}",
		},
		{
			name:     "empty base path",
			template: `<a href="/x">`,
			basePath: "",
			want:     `<a href="/x">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTemplate(tt.template, "Home", "<div><p>hi</p></div>", tt.basePath)
			if got != tt.want {
				t.Errorf("RenderTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
