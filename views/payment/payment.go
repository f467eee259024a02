// Package payment renders the card step of the checkout flow.
package payment

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
	Form      ckout.BillingInfo
	Errors    ckout.FieldErrors
	Countries []string
}

var pageTmpl = helpers.Must("payment", `
<section class="max-w-2xl mx-auto px-4 py-10">
	<h1 class="text-2xl font-bold">Payment</h1>
	<div class="mt-4 rounded-xl border border-stone-200 bg-white p-4 flex items-center justify-between">
		<p class="font-medium">{{.Draft.ProductName}}</p>
		<p class="text-lg font-semibold">{{price .Draft.ProductPriceCents}}</p>
	</div>

	<form method="POST" action="/payment?draft={{.Draft.ID}}" id="payment-form" class="mt-8 space-y-4">
		<h2 class="font-semibold">Card details</h2>
		<div>
			<input name="card_number" inputmode="numeric" autocomplete="cc-number" placeholder="1234 5678 9012 3456" value="{{.Form.CardNumber}}" data-format="card" class="w-full rounded-lg border-stone-300">
			{{with index .Errors "card_number"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
		</div>
		<div class="grid grid-cols-2 gap-4">
			<div>
				<input name="expiry" inputmode="numeric" autocomplete="cc-exp" placeholder="MM/YY" value="{{.Form.Expiry}}" data-format="expiry" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "expiry"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
			<div>
				<input name="cvc" inputmode="numeric" autocomplete="cc-csc" placeholder="CVC" value="{{.Form.Cvc}}" class="w-full rounded-lg border-stone-300">
				{{with index .Errors "cvc"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
			</div>
		</div>
		<div>
			<input name="name" placeholder="Name on card" value="{{.Form.Name}}" class="w-full rounded-lg border-stone-300">
			{{with index .Errors "name"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
		</div>

		<h2 class="font-semibold pt-2">Billing information</h2>
		<label class="flex items-center gap-2 text-sm">
			<input type="checkbox" name="same_as_shipping" value="true" {{if .Form.SameAsShipping}}checked{{end}} id="same-as-shipping">
			Same as shipping address
		</label>
		<div id="billing-fields" {{if .Form.SameAsShipping}}class="hidden"{{end}}>
			<div class="space-y-4">
				<div>
					<input type="text" name="email" placeholder="Email (optional)" value="{{.Form.Email}}" class="w-full rounded-lg border-stone-300">
					{{with index .Errors "email"}}<p class="text-sm text-red-600 mt-1">{{.}}</p>{{end}}
				</div>
				<div>
					<input name="phone" placeholder="Phone (optional)" value="{{.Form.Phone}}" class="w-full rounded-lg border-stone-300">
				</div>
				<div>
					<input name="address" placeholder="Billing address" value="{{.Form.Address}}" class="w-full rounded-lg border-stone-300">
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
			</div>
		</div>

		<button type="submit" data-processing-label="Processing..." class="w-full py-3 rounded-xl bg-stone-900 text-white">Pay {{price .Draft.ProductPriceCents}}</button>
	</form>
</section>`)

func Page(data Data) templ.Component {
	return layout.Base(data.Meta, helpers.Component(pageTmpl, data))
}
