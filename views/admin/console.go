package admin

import (
	"html/template"
	"strings"

	"github.com/a-h/templ"
	"github.com/mybae/storefront/internal/toast"
	"github.com/mybae/storefront/storage/db"
	"github.com/mybae/storefront/views/helpers"
	"github.com/mybae/storefront/views/layout"
)

// Tab names, used in URLs and template conditionals.
const (
	TabProduct  = "product"
	TabSettings = "settings"
	TabMessages = "messages"
	TabReviews  = "reviews"
	TabPayments = "payments"
)

type ConsoleData struct {
	Meta      layout.PageMeta
	ActiveTab string
	Toasts    []toast.Toast

	Product db.Product
	Media   []db.ProductMedium
	Video   *db.ProductVideo

	Settings db.SiteSetting
	Assets   []db.SiteAsset

	Messages []db.ContactMessage
	Reviews  []db.ProductReview
	Payments []db.PaymentInformation
}

var consoleFuncs = template.FuncMap{
	"tabs": func() []string {
		return []string{TabProduct, TabSettings, TabMessages, TabReviews, TabPayments}
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"centsToDollars": func(cents int64) float64 {
		return float64(cents) / 100
	},
}

var consoleTmpl = template.Must(template.New("admin-console").Funcs(helpers.Funcs()).Funcs(consoleFuncs).Parse(`
<section class="max-w-5xl mx-auto px-4 py-8">
	<div class="flex items-center justify-between">
		<h1 class="text-2xl font-bold">Admin Console</h1>
		<a href="/" class="text-sm text-stone-500 hover:text-stone-800">View site &rarr;</a>
	</div>

	<div id="toasts" class="fixed top-4 right-4 space-y-2 z-50">
		{{range .Toasts}}
		<div class="toast rounded-lg px-4 py-3 shadow text-white {{if eq .Kind "error"}}bg-red-600{{else}}bg-emerald-600{{end}}" data-toast-id="{{.ID}}" data-ttl="3000">
			{{.Message}}
			<form method="POST" action="/admin/toasts/{{.ID}}/dismiss" class="inline"><button class="ml-2 opacity-70">&times;</button></form>
		</div>
		{{end}}
	</div>

	<nav class="mt-6 flex gap-2 border-b border-stone-200">
		{{$active := .ActiveTab}}
		{{range $tab := tabs}}
		<a href="/admin?tab={{$tab}}" class="{{if eq $tab $active}}{{classes "px-4 py-2 text-sm rounded-t-lg" "bg-stone-900 text-white"}}{{else}}px-4 py-2 text-sm rounded-t-lg text-stone-600 hover:bg-stone-100{{end}}">{{title $tab}}</a>
		{{end}}
	</nav>

	{{if eq .ActiveTab "product"}}
	<div class="mt-6 grid md:grid-cols-2 gap-8">
		<form method="POST" action="/admin/product" class="space-y-4" id="product-form">
			<h2 class="font-semibold">Product</h2>
			<input name="name" placeholder="Product name" value="{{.Product.Name}}" required class="w-full rounded-lg border-stone-300">
			<input name="price" placeholder="Price (e.g. 129.99)" value="{{printf "%.2f" (centsToDollars .Product.PriceCents)}}" required class="w-full rounded-lg border-stone-300">
			<input name="short_description" placeholder="Short description" value="{{nullstring .Product.ShortDescription ""}}" class="w-full rounded-lg border-stone-300">
			<textarea name="long_description" placeholder="Long description" rows="5" class="w-full rounded-lg border-stone-300">{{nullstring .Product.LongDescription ""}}</textarea>
			<input name="seo_title" placeholder="SEO title" value="{{nullstring .Product.SeoTitle ""}}" class="w-full rounded-lg border-stone-300">
			<input name="seo_description" placeholder="SEO description" value="{{nullstring .Product.SeoDescription ""}}" class="w-full rounded-lg border-stone-300">
			<label class="flex items-center gap-2 text-sm">
				<input type="checkbox" name="in_stock" value="true" {{if or (not .Product.InStock.Valid) .Product.InStock.Bool}}checked{{end}}>
				In stock
			</label>
			<button type="submit" class="px-4 py-2 rounded-lg bg-stone-900 text-white">Save Product</button>
		</form>

		<div>
			<h2 class="font-semibold">Photos</h2>
			<form method="POST" action="/admin/product/media" enctype="multipart/form-data" class="mt-2 flex gap-2">
				<input type="file" name="files" multiple accept="image/*" class="text-sm">
				<button type="submit" class="px-3 py-1.5 rounded-lg bg-stone-900 text-white text-sm">Upload</button>
			</form>
			<div class="mt-4 grid grid-cols-3 gap-2">
				{{range .Media}}
				<div class="relative group">
					<img src="{{.Url}}" class="rounded-lg aspect-square object-cover">
					<form method="POST" action="/admin/product/media/delete">
						<input type="hidden" name="url" value="{{.Url}}">
						<button class="absolute top-1 right-1 hidden group-hover:block bg-red-600 text-white rounded-full w-6 h-6 text-xs">&times;</button>
					</form>
				</div>
				{{end}}
			</div>

			<h2 class="font-semibold mt-8">Video</h2>
			{{if .Video}}
			<video src="{{.Video.Url}}" controls class="mt-2 rounded-lg w-full"></video>
			<form method="POST" action="/admin/product/video/delete" class="mt-2">
				<button class="px-3 py-1.5 rounded-lg bg-red-600 text-white text-sm">Remove Video</button>
			</form>
			{{else}}
			<p class="mt-2 text-sm text-stone-500">No video uploaded.</p>
			{{end}}
			<form method="POST" action="/admin/product/video" enctype="multipart/form-data" class="mt-2 flex gap-2">
				<input type="file" name="file" accept="video/*" class="text-sm">
				<button type="submit" class="px-3 py-1.5 rounded-lg bg-stone-900 text-white text-sm">{{if .Video}}Replace{{else}}Upload{{end}} Video</button>
			</form>
		</div>
	</div>
	{{end}}

	{{if eq .ActiveTab "settings"}}
	<div class="mt-6 grid md:grid-cols-2 gap-8">
		<div class="space-y-8">
			<form method="POST" action="/admin/settings" class="space-y-4">
				<h2 class="font-semibold">Site settings</h2>
				<input name="site_name" placeholder="Site name" value="{{.Settings.SiteName}}" required class="w-full rounded-lg border-stone-300">
				<button type="submit" class="px-4 py-2 rounded-lg bg-stone-900 text-white">Save Settings</button>
			</form>

			<form method="POST" action="/admin/contact-info" class="space-y-4">
				<h2 class="font-semibold">Contact info</h2>
				<input name="contact_email" placeholder="Contact email" value="{{nullstring .Settings.ContactEmail ""}}" class="w-full rounded-lg border-stone-300">
				<input name="contact_phone" placeholder="Contact phone" value="{{nullstring .Settings.ContactPhone ""}}" class="w-full rounded-lg border-stone-300">
				<textarea name="contact_address" placeholder="Address" rows="3" class="w-full rounded-lg border-stone-300">{{nullstring .Settings.ContactAddress ""}}</textarea>
				<button type="submit" class="px-4 py-2 rounded-lg bg-stone-900 text-white">Save Contact Info</button>
			</form>
		</div>

		<div>
			<h2 class="font-semibold">Branding</h2>
			{{range .Assets}}
			<div class="mt-3 flex items-center gap-3">
				<img src="{{.Url}}" class="h-10 w-10 object-contain rounded border border-stone-200">
				<span class="text-sm text-stone-600">{{title .Type}} &middot; updated {{date .UpdatedAt}}</span>
			</div>
			{{end}}
			<form method="POST" action="/admin/assets/logo" enctype="multipart/form-data" class="mt-4 flex gap-2">
				<input type="file" name="file" accept="image/*" class="text-sm">
				<button type="submit" class="px-3 py-1.5 rounded-lg bg-stone-900 text-white text-sm">Upload Logo</button>
			</form>
			<form method="POST" action="/admin/assets/favicon" enctype="multipart/form-data" class="mt-2 flex gap-2">
				<input type="file" name="file" accept="image/*" class="text-sm">
				<button type="submit" class="px-3 py-1.5 rounded-lg bg-stone-900 text-white text-sm">Upload Favicon</button>
			</form>
		</div>
	</div>
	{{end}}

	{{if eq .ActiveTab "messages"}}
	<div class="mt-6 space-y-3">
		{{if not .Messages}}<p class="text-stone-500">No messages yet.</p>{{end}}
		{{range .Messages}}
		<div class="rounded-xl border border-stone-200 bg-white p-4 {{if not .Read}}border-l-4 border-l-blue-500{{end}}">
			<div class="flex items-center justify-between">
				<span class="font-medium">{{.Email}}</span>
				<span class="text-xs text-stone-400">{{datetime .CreatedAt}}</span>
			</div>
			<p class="mt-2 text-stone-600 whitespace-pre-line">{{.Message}}</p>
			{{if not .Read}}
			<form method="POST" action="/admin/messages/{{.ID}}/read" class="mt-2">
				<button class="text-sm text-blue-600">Mark as read</button>
			</form>
			{{end}}
		</div>
		{{end}}
	</div>
	{{end}}

	{{if eq .ActiveTab "reviews"}}
	<div class="mt-6 space-y-3">
		{{if not .Reviews}}<p class="text-stone-500">No reviews yet.</p>{{end}}
		{{range .Reviews}}
		<div class="rounded-xl border border-stone-200 bg-white p-4">
			<div class="flex items-center justify-between">
				<div>
					<span class="font-medium">{{.Name}}</span>
					<span class="ml-2 text-amber-500">{{stars .Rating}}</span>
					{{if .Featured}}<span class="ml-2 text-xs bg-amber-100 text-amber-800 rounded px-2 py-0.5">Featured</span>{{end}}
				</div>
				<span class="text-xs text-stone-400">{{date .CreatedAt}}</span>
			</div>
			<p class="mt-2 text-stone-600">{{.Comment}}</p>
			<form method="POST" action="/admin/reviews/{{.ID}}/feature" class="mt-2">
				<button class="text-sm text-blue-600">{{if .Featured}}Unfeature{{else}}Feature{{end}}</button>
			</form>
		</div>
		{{end}}
	</div>
	{{end}}

	{{if eq .ActiveTab "payments"}}
	<div class="mt-6 overflow-x-auto">
		{{if not .Payments}}<p class="text-stone-500">No payments yet.</p>{{end}}
		{{if .Payments}}
		<table class="w-full text-sm">
			<thead class="text-left text-stone-500 border-b border-stone-200">
				<tr><th class="py-2">Order</th><th>Customer</th><th>Card</th><th>Amount</th><th>Status</th><th>Date</th><th></th></tr>
			</thead>
			<tbody>
				{{range .Payments}}
				<tr class="border-b border-stone-100">
					<td class="py-2 font-mono">{{.OrderID}}</td>
					<td>{{.BillingName}}<br><span class="text-stone-400">{{.BillingEmail}}</span></td>
					<td>&bull;&bull;&bull;&bull; {{last4 .CardNumber}}</td>
					<td>{{price .AmountCents}}</td>
					<td>{{.Status}}</td>
					<td>{{datetime .CreatedAt}}</td>
					<td><a href="/admin/payments/{{.OrderID}}/receipt.pdf" class="text-blue-600">Receipt</a></td>
				</tr>
				{{end}}
			</tbody>
		</table>
		{{end}}
	</div>
	{{end}}
</section>`))

func Console(data ConsoleData) templ.Component {
	return layout.Base(data.Meta, helpers.Component(consoleTmpl, data))
}
