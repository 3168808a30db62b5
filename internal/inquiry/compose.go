// Package inquiry builds the pre-filled email draft for a set of cart
// items and packages it as a mailto deep link.
package inquiry

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caprest/clearance-catalog/internal/domain/product"
)

// DefaultRecipient receives inquiry emails unless configured otherwise.
const DefaultRecipient = "CapitalRestorationNewYork@gmail.com"

const (
	greeting        = "Hello Capital Restoration,"
	itemizedIntro   = "I'd like to inquire about:"
	genericIntro    = "I'd like to inquire about the following product(s):"
	fallbackSubject = "Product Inquiry"
)

// contactFields are left blank for the sender to fill in their mail client.
var contactFields = []string{"Name:", "Phone:", "Preferred contact method:", "Notes:"}

// Mail is a composed draft, plain text, not yet URL-encoded.
type Mail struct {
	Subject string
	Body    string
}

// Compose builds the inquiry draft for the given items in order. A
// non-empty cart gets an itemized body with a total line; an empty cart
// gets a generic inquiry sentence and the fallback subject.
func Compose(items []product.Product) Mail {
	subject := fallbackSubject
	if n := len(items); n > 0 {
		plural := ""
		if n > 1 {
			plural = "s"
		}
		subject = fmt.Sprintf("Inquiry about %d product%s", n, plural)
	}

	lines := []string{greeting, ""}
	if len(items) > 0 {
		lines = append(lines, itemizedIntro)
		total := decimal.Zero
		for _, p := range items {
			lines = append(lines,
				"- "+p.Name,
				"  Price: $"+product.FormatMoney(p.Price),
			)
			total = total.Add(p.Price)
		}
		lines = append(lines, "", "Total: $"+product.FormatMoney(total))
	} else {
		lines = append(lines, genericIntro)
	}
	lines = append(lines, "")
	lines = append(lines, contactFields...)

	return Mail{
		Subject: subject,
		Body:    strings.Join(lines, "\n"),
	}
}

// MailtoLink assembles the mailto deep link for the draft. Subject and
// body are percent-encoded here and nowhere else, so the values pass
// through exactly one encoding step.
func (m Mail) MailtoLink(recipient string) string {
	return "mailto:" + recipient +
		"?subject=" + encodeComponent(m.Subject) +
		"&body=" + encodeComponent(m.Body)
}

// ComposeLink is Compose followed by MailtoLink.
func ComposeLink(items []product.Product, recipient string) string {
	return Compose(items).MailtoLink(recipient)
}

// encodeComponent percent-encodes a mailto header value. Query escaping
// alone is wrong here: mail clients do not decode '+' as a space, so
// spaces must come out as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
