// Package confirmation renders the post-payment order summary.
package confirmation

import (
	"github.com/a-h/templ"
	"github.com/mybae/storefront/storage/db"
	"github.com/mybae/storefront/views/helpers"
	"github.com/mybae/storefront/views/layout"
)

type Data struct {
	Meta    layout.PageMeta
	Payment db.PaymentInformation
}

var pageTmpl = helpers.Must("confirmation", `
<section class="max-w-2xl mx-auto px-4 py-16 text-center">
	<div class="inline-flex items-center justify-center w-16 h-16 rounded-full bg-emerald-100 text-emerald-600 text-3xl">&#10003;</div>
	<h1 class="text-3xl font-bold mt-6">Thank you for your order!</h1>
	<p class="mt-2 text-stone-600">A confirmation email is on its way to {{.Payment.BillingEmail}}.</p>

	<div class="mt-10 rounded-xl border border-stone-200 bg-white p-6 text-left space-y-3">
		<div class="flex justify-between"><span class="text-stone-500">Order number</span><span class="font-mono">{{.Payment.OrderID}}</span></div>
		<div class="flex justify-between"><span class="text-stone-500">Placed</span><span>{{datetime .Payment.CreatedAt}}</span></div>
		<div class="flex justify-between"><span class="text-stone-500">Paid with</span><span>Card ending {{last4 .Payment.CardNumber}}</span></div>
		<div class="flex justify-between text-lg font-semibold pt-2 border-t border-stone-100"><span>Total</span><span>{{price .Payment.AmountCents}}</span></div>
	</div>

	<a href="/" class="inline-block mt-8 px-6 py-3 rounded-xl bg-stone-900 text-white">Back to the shop</a>
</section>`)

func Page(data Data) templ.Component {
	return layout.Base(data.Meta, helpers.Component(pageTmpl, data))
}
