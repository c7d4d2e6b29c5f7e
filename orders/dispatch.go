package orders

import (
	"fmt"
	"net/url"
	"strings"

	"mvs/models"
	"mvs/utils"
)

const divider = "------------------------"

// DispatchMessage renders the human-readable order summary handed to
// the WhatsApp channel. Pure formatting over an assembled order.
func DispatchMessage(o models.Order) string {
	d := o.ShippingDetails

	var b strings.Builder
	fmt.Fprintf(&b, "*NEW ORDER: %s*\n", o.OrderID)
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "*Customer:* %s\n", d.CustomerName)
	fmt.Fprintf(&b, "*Phone:* %s\n", d.Phone)
	fmt.Fprintf(&b, "*Address:* %s, %s, %s, %s\n", d.Address, d.City, d.State, d.Pincode)
	b.WriteString(divider + "\n")
	b.WriteString("*Items:*\n")
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "- %s (x%d)\n", line.Name, line.Quantity)
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", utils.FormatINR(o.Subtotal))
	fmt.Fprintf(&b, "Shipping: %s\n", utils.FormatINR(o.ShippingCost))
	fmt.Fprintf(&b, "*TOTAL TO PAY: %s*\n", utils.FormatINR(o.Total))
	b.WriteString(divider + "\n")
	b.WriteString("_Please confirm payment details._")

	return b.String()
}

// WhatsAppURL builds the deep link that opens the chat with the store
// number and the URL-encoded dispatch message prefilled.
func WhatsAppURL(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
