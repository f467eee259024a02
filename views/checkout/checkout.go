// Package checkout renders the shipping step of the checkout flow.
package checkout

import (
	"github.com/a-h/templ"
	ckout "github.com/mybae/storefront/internal/checkout"
	"github.com/mybae/storefront/storage/db"
	"github.com/mybae/storefront/views/helpers"
	"github.com/mybae/storefront/views/layout"
)

type Data struct {
	Meta      layout.PageMeta
	Draft     db.CheckoutDraft
	Form      ckout.ShippingInfo
	Errors    ckout.FieldErrors
	Countries []string
}

var pageTmpl = helpers.Must("checkout", `
<section class="max-w-2xl mx-auto px-4 py-10">
	<h1 class="text-2xl font-bold">Checkout</h1>
	<div class="mt-4 rounded-xl border border-stone-200 bg-white p-4 flex items-center justify-between">
		<div>
			<p class="font-medium">{{.Draft.ProductName}}</p>
			{{if .Draft.ProductDescription.Valid}}<p class="text-sm text-stone-500">{{.Draft.ProductDescription.String}}</p>{{end}}
		</div>
		<p class="text-lg font-semibold">{{price .Draft.ProductPriceCents}}</p>
	</div>

	<form method="POST" action="/checkout?draft={{.Draft.ID}}" class="mt-8 space-y-4">
		<h2 class="font-semibold">Shipping information</h2>
		<div class="grid grid-cols-2 gap-4">
			<div>
				<input name="first_name" placeholder="First name" value="{{.Form.FirstName}}" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "first_name"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
			<div>
				<input name="last_name" placeholder="Last name" value="{{.Form.LastName}}" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "last_name"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
		</div>
		<div>
			<input type="text" name="email" placeholder="Email" value="{{.Form.Email}}" class="w-full rounded-lg border-stone-300">
			{{with index .Errors "email"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
		</div>
		<div>
			<input name="address" placeholder="Street address" value="{{.Form.Address}}" class="w-full rounded-lg border-stone-300">
			{{with index .Errors "address"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
		</div>
		<div class="grid grid-cols-3 gap-4">
			<div>
				<input name="city" placeholder="City" value="{{.Form.City}}" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "city"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
			<div>
				<input name="state" placeholder="State" value="{{.Form.State}}" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "state"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
			<div>
				<input name="zip" placeholder="ZIP" value="{{.Form.Zip}}" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "zip"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
		</div>
		<div>
			<select name="country" class="w-full rounded-lg border-stone-300">
				{{$selected := .Form.Country}}
				{{range .Countries}}<option value="{{.}}"{{if eq . $selected}} selected{{end}}>{{.}}</option>{{end}}
			</select>
			{{with index .Errors "country"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
		</div>
		<button type="submit" class="w-full py-3 rounded-xl bg-stone-900 text-white">Continue to Payment</button>
	</form>
</section>`)

func Page(data Data) templ.Component {
	return layout.Base(data.Meta, helpers.Component(pageTmpl, data))
}
