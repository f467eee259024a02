package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// baseEmailTemplate is the shared wrapper for every message.
const baseEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            margin: 0;
            padding: 0;
            background-color: #f5f5f5;
        }
        .email-wrapper {
            max-width: 600px;
            margin: 0 auto;
            background-color: #ffffff;
        }
        .header {
            background-color: #1f2937;
            color: #ffffff;
            padding: 20px 30px;
        }
        .content {
            padding: 30px;
        }
        .footer {
            padding: 20px 30px;
            font-size: 12px;
            color: #888;
            border-top: 1px solid #eee;
        }
        .detail-row {
            padding: 6px 0;
            border-bottom: 1px solid #f0f0f0;
        }
        .detail-label {
            color: #888;
            font-size: 13px;
        }
        .total {
            font-size: 18px;
            font-weight: bold;
            padding-top: 12px;
        }
    </style>
</head>
<body>
    <div class="email-wrapper">
        <div class="header"><h2>{{.Subject}}</h2></div>
        <div class="content">{{.Content}}</div>
        <div class="footer">This message was sent automatically. Reply to reach us.</div>
    </div>
</body>
</html>
`

const customerOrderTemplate = `
<p>Hi {{.CustomerName}},</p>
<p>Thanks for your order! Here are the details:</p>
<div class="detail-row"><span class="detail-label">Order</span><br>{{.OrderID}}</div>
<div class="detail-row"><span class="detail-label">Item</span><br>{{.ProductName}}</div>
<div class="detail-row"><span class="detail-label">Placed</span><br>{{.OrderDate}}</div>
<div class="detail-row"><span class="detail-label">Ships to</span><br>
    {{.ShippingAddr.Name}}<br>
    {{.ShippingAddr.Line1}}<br>
    {{.ShippingAddr.City}}, {{.ShippingAddr.State}} {{.ShippingAddr.Zip}}<br>
    {{.ShippingAddr.Country}}
</div>
<div class="total">Total: {{FormatCents .AmountCents}}</div>
<p>We will email you again when it ships.</p>
`

const adminOrderTemplate = `
<p>A new order just came in.</p>
<div class="detail-row"><span class="detail-label">Order</span><br>{{.OrderID}}</div>
<div class="detail-row"><span class="detail-label">Customer</span><br>{{.CustomerName}} ({{.CustomerEmail}})</div>
<div class="detail-row"><span class="detail-label">Item</span><br>{{.ProductName}}</div>
<div class="detail-row"><span class="detail-label">Ships to</span><br>
    {{.ShippingAddr.Name}}<br>
    {{.ShippingAddr.Line1}}<br>
    {{.ShippingAddr.City}}, {{.ShippingAddr.State}} {{.ShippingAddr.Zip}}<br>
    {{.ShippingAddr.Country}}
</div>
<div class="total">Total: {{FormatCents .AmountCents}}</div>
`

const contactTemplate = `
<p>New message from the contact form.</p>
<div class="detail-row"><span class="detail-label">From</span><br>{{.Email}}</div>
<div class="detail-row"><span class="detail-label">Received</span><br>{{.SubmittedAt}}</div>
<div class="detail-row"><span class="detail-label">Message</span><br>{{.Message}}</div>
`

type baseEmailData struct {
	Content template.HTML
	Subject string
}

func renderOrderEmail(contentTemplate string, data *OrderData) (string, error) {
	tmpl := template.Must(template.New("order").Funcs(template.FuncMap{
		"FormatCents": FormatCents,
	}).Parse(contentTemplate))

	var content bytes.Buffer
	if err := tmpl.Execute(&content, data); err != nil {
		return "", fmt.Errorf("failed to render order email content: %w", err)
	}

	return wrapInBase(content.String(), "Order "+data.OrderID)
}

func renderContactEmail(data *ContactData) (string, error) {
	tmpl := template.Must(template.New("contact").Parse(contactTemplate))

	var content bytes.Buffer
	if err := tmpl.Execute(&content, data); err != nil {
		return "", fmt.Errorf("failed to render contact email content: %w", err)
	}

	return wrapInBase(content.String(), "New Contact Message")
}

func wrapInBase(content, subject string) (string, error) {
	tmpl := template.Must(template.New("base").Parse(baseEmailTemplate))

	var out bytes.Buffer
	err := tmpl.Execute(&out, baseEmailData{
		Content: template.HTML(content),
		Subject: subject,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render base email template: %w", err)
	}
	return out.String(), nil
}
