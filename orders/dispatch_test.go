package orders

import (
	"strings"
	"testing"
	"time"

	"mvs/models"
)

func TestDispatchMessageFormat(t *testing.T) {
	order := models.Order{
		OrderID: "ORD-1752489000000",
		Lines: []models.CartLine{
			{Name: "Milk White OHM Betta", Quantity: 2},
			{Name: "Air Pump One Way", Quantity: 1},
		},
		ShippingDetails: models.ShippingDetails{
			CustomerName: "Ravi Kumar",
			Address:      "12-3-456, Tank Bund Road",
			City:         "Hyderabad",
			State:        "Telangana",
			Pincode:      "500001",
			Phone:        "+91 99999 99999",
		},
		Subtotal:     339,
		ShippingCost: 80,
		Total:        419,
		Status:       models.StatusPendingHandoff,
		CreatedAt:    time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC),
	}

	want := strings.Join([]string{
		"*NEW ORDER: ORD-1752489000000*",
		"------------------------",
		"*Customer:* Ravi Kumar",
		"*Phone:* +91 99999 99999",
		"*Address:* 12-3-456, Tank Bund Road, Hyderabad, Telangana, 500001",
		"------------------------",
		"*Items:*",
		"- Milk White OHM Betta (x2)",
		"- Air Pump One Way (x1)",
		"------------------------",
		"Subtotal: ₹339",
		"Shipping: ₹80",
		"*TOTAL TO PAY: ₹419*",
		"------------------------",
		"_Please confirm payment details._",
	}, "\n")

	if got := DispatchMessage(order); got != want {
		t.Errorf("dispatch message mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestDispatchMessageKeepsCartOrder(t *testing.T) {
	order := models.Order{
		OrderID: "ORD-1",
		Lines: []models.CartLine{
			{Name: "B", Quantity: 1},
			{Name: "A", Quantity: 1},
		},
	}
	msg := DispatchMessage(order)
	if strings.Index(msg, "- B (x1)") > strings.Index(msg, "- A (x1)") {
		t.Error("items not rendered in cart order")
	}
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("916302382280", "hello order")
	if !strings.HasPrefix(got, "https://wa.me/916302382280?text=") {
		t.Fatalf("unexpected url: %s", got)
	}
	if strings.ContainsAny(strings.TrimPrefix(got, "https://wa.me/916302382280?text="), " \n*") {
		t.Errorf("message not fully encoded: %s", got)
	}
}
