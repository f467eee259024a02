// Package home renders the storefront landing page: the product with
// its media carousel, the review wall, and the contact form.
package home

import (
	"github.com/a-h/templ"
	"github.com/mybae/storefront/storage/db"
	"github.com/mybae/storefront/views/helpers"
	"github.com/mybae/storefront/views/layout"
)

type Data struct {
	Meta     layout.PageMeta
	Product  db.Product
	Media    []db.ProductMedium
	Video    *db.ProductVideo
	Reviews  []db.ProductReview
	Settings db.SiteSetting
	// SlideIndex is the carousel slide to show first.
	SlideIndex int
}

var indexTmpl = helpers.Must("home", `
<section class="max-w-5xl mx-auto px-4 py-10 grid md:grid-cols-2 gap-10">
	<div id="carousel" class="relative" data-interval="5000" data-index="{{.SlideIndex}}">
		{{range $i, $m := .Media}}
		<div class="carousel-slide{{if ne $i $.SlideIndex}} hidden{{end}}" data-slide="{{$i}}">
			<img src="{{$m.Url}}" alt="{{$.Product.Name}}" class="rounded-xl w-full object-cover aspect-square">
		</div>
		{{end}}
		{{if .Video}}
		<div class="carousel-slide{{if ne (len .Media) $.SlideIndex}} hidden{{end}}" data-slide="{{len .Media}}" data-video>
			<video src="{{.Video.Url}}" controls class="rounded-xl w-full aspect-square bg-black"></video>
		</div>
		{{end}}
		{{if .Media}}
		<button class="carousel-prev absolute left-2 top-1/2 -translate-y-1/2 bg-white/80 rounded-full w-9 h-9" aria-label="Previous slide">&lsaquo;</button>
		<button class="carousel-next absolute right-2 top-1/2 -translate-y-1/2 bg-white/80 rounded-full w-9 h-9" aria-label="Next slide">&rsaquo;</button>
		{{else}}
		<div class="rounded-xl w-full aspect-square bg-stone-100 flex items-center justify-center text-stone-400">No photos yet</div>
		{{end}}
	</div>
	<div>
		<h1 class="text-3xl font-bold">{{.Product.Name}}</h1>
		<p class="text-2xl mt-2">{{price .Product.PriceCents}}</p>
		{{if .Product.ShortDescription.Valid}}<p class="mt-4 text-stone-600">{{.Product.ShortDescription.String}}</p>{{end}}
		{{if .Product.LongDescription.Valid}}<div class="mt-4 text-stone-700 whitespace-pre-line">{{.Product.LongDescription.String}}</div>{{end}}
		<form method="POST" action="/checkout/start" class="mt-8">
			{{if and .Product.InStock.Valid (not .Product.InStock.Bool)}}
			<button type="submit" disabled class="w-full py-3 rounded-xl bg-stone-300 text-stone-500 cursor-not-allowed">Sold Out</button>
			{{else}}
			<button type="submit" class="w-full py-3 rounded-xl bg-stone-900 text-white hover:bg-stone-700">Buy Now</button>
			{{end}}
		</form>
	</div>
</section>

<section class="max-w-5xl mx-auto px-4 py-10" id="reviews">
	<h2 class="text-2xl font-semibold mb-6">Reviews</h2>
	{{if not .Reviews}}<p class="text-stone-500">No reviews yet. Be the first!</p>{{end}}
	<div class="grid md:grid-cols-2 gap-4">
		{{range .Reviews}}
		<div class="{{if .Featured}}{{classes "rounded-xl border border-stone-200 bg-white p-4" "border-amber-400 ring-1 ring-amber-300"}}{{else}}rounded-xl border border-stone-200 bg-white p-4{{end}}">
			<div class="flex items-center justify-between">
				<span class="font-medium">{{.Name}}</span>
				<span class="text-amber-500" aria-label="{{.Rating}} out of 5">{{stars .Rating}}</span>
			</div>
			<p class="mt-2 text-stone-600">{{.Comment}}</p>
			<p class="mt-2 text-xs text-stone-400">{{date .CreatedAt}}</p>
		</div>
		{{end}}
	</div>
	<form method="POST" action="/reviews" class="mt-8 max-w-lg space-y-3">
		<h3 class="font-semibold">Leave a review</h3>
		<input name="name" placeholder="Your name" required class="w-full rounded-lg border-stone-300">
		<select name="rating" required class="w-full rounded-lg border-stone-300">
			<option value="5">5 - Excellent</option>
			<option value="4">4 - Great</option>
			<option value="3">3 - Good</option>
			<option value="2">2 - Fair</option>
			<option value="1">1 - Poor</option>
		</select>
		<textarea name="comment" placeholder="Your review" required class="w-full rounded-lg border-stone-300" rows="3"></textarea>
		<button type="submit" class="px-4 py-2 rounded-lg bg-stone-900 text-white">Submit Review</button>
	</form>
</section>

<section class="max-w-5xl mx-auto px-4 py-10" id="contact">
	<h2 class="text-2xl font-semibold mb-4">Get in touch</h2>
	<div class="grid md:grid-cols-2 gap-10">
		<form method="POST" action="/contact/submit" class="space-y-3">
			<input type="email" name="email" placeholder="Your email" required class="w-full rounded-lg border-stone-300">
			<textarea name="message" placeholder="Your message" required class="w-full rounded-lg border-stone-300" rows="4"></textarea>
			<button type="submit" class="px-4 py-2 rounded-lg bg-stone-900 text-white">Send Message</button>
		</form>
		<div class="text-stone-600 space-y-1">
			{{if .Settings.ContactEmail.Valid}}<p>{{.Settings.ContactEmail.String}}</p>{{end}}
			{{if .Settings.ContactPhone.Valid}}<p>{{.Settings.ContactPhone.String}}</p>{{end}}
			{{if .Settings.ContactAddress.Valid}}<p class="whitespace-pre-line">{{.Settings.ContactAddress.String}}</p>{{end}}
		</div>
	</div>
</section>`)

func Index(data Data) templ.Component {
	return layout.Base(data.Meta, helpers.Component(indexTmpl, data))
}
