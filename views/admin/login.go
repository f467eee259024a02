// Package admin renders the admin console and its login page.
package admin

import (
	"github.com/a-h/templ"
	"github.com/mybae/storefront/views/helpers"
	"github.com/mybae/storefront/views/layout"
)

type LoginData struct {
	Meta layout.PageMeta
	// Next is where to send the admin after sign-in.
	Next string
	// PublishableKey is the Clerk frontend key the browser bundle
	// authenticates with.
	PublishableKey string
}

var loginTmpl = helpers.Must("admin-login", `
<section class="max-w-md mx-auto px-4 py-16">
	<h1 class="text-2xl font-bold text-center">Admin Sign In</h1>
	<div id="sign-in" class="mt-8" data-next="{{.Next}}"></div>
	<script async crossorigin="anonymous" data-clerk-publishable-key="{{.PublishableKey}}" src="https://cdn.jsdelivr.net/npm/@clerk/clerk-js@5/dist/clerk.browser.js"></script>
	<script>
		window.addEventListener('load', async () => {
			await Clerk.load();
			Clerk.mountSignIn(document.getElementById('sign-in'), {
				afterSignInUrl: document.getElementById('sign-in').dataset.next || '/admin',
			});
		});
	</script>
</section>`)

func Login(data LoginData) templ.Component {
	return layout.Base(data.Meta, helpers.Component(loginTmpl, data))
}
