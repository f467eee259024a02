package layout

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/mybae/storefront/views/helpers"
)

var baseTmpl = helpers.Must("layout", `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Meta.Title}}</title>
	{{if .Meta.Description}}<meta name="description" content="{{.Meta.Description}}">{{end}}
	<link rel="canonical" href="{{.Meta.CanonicalURL}}">
	<link rel="icon" href="{{.Meta.FaviconURL}}">
	<meta property="og:type" content="{{.Meta.OGType}}">
	<meta property="og:title" content="{{.Meta.OGTitle}}">
	{{if .Meta.OGDescription}}<meta property="og:description" content="{{.Meta.OGDescription}}">{{end}}
	{{if .Meta.OGImageURL}}<meta property="og:image" content="{{.Meta.OGImageURL}}">{{end}}
	<meta property="og:url" content="{{.Meta.OGURL}}">
	<meta property="og:site_name" content="{{.Meta.OGSiteName}}">
	<script src="https://cdn.tailwindcss.com"></script>
	<link href="/public/css/site.css" rel="stylesheet">
</head>
<body class="min-h-screen bg-stone-50 text-stone-900 flex flex-col">
	<header class="border-b border-stone-200 bg-white">
		<div class="max-w-5xl mx-auto px-4 py-4 flex items-center gap-3">
			{{if .Meta.LogoURL}}<a href="/"><img src="{{.Meta.LogoURL}}" alt="{{.Meta.SiteName}}" class="h-10 w-auto"></a>{{end}}
			<a href="/" class="text-xl font-semibold">{{.Meta.SiteName}}</a>
		</div>
	</header>
	<main class="flex-1">{{.Body}}</main>
	<footer class="border-t border-stone-200 bg-white mt-12">
		<div class="max-w-5xl mx-auto px-4 py-6 text-sm text-stone-500">
			&copy; {{.Meta.SiteName}}
		</div>
	</footer>
	<script src="/public/js/site.js" defer></script>
</body>
</html>`)

type baseData struct {
	Meta PageMeta
	Body template.HTML
}

// Base wraps a page body in the site shell.
func Base(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := body.Render(ctx, &buf); err != nil {
			return fmt.Errorf("failed to render page body: %w", err)
		}
		return baseTmpl.Execute(w, baseData{
			Meta: meta,
			Body: template.HTML(buf.String()),
		})
	})
}
