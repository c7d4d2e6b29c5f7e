package orders

import (
	"errors"
	"strings"
	"testing"
	"time"

	"mvs/models"
)

func fixedAssembler() *Assembler {
	at := time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)
	return &Assembler{
		Now:   func() time.Time { return at },
		NewID: func(t time.Time) string { return "ORD-TEST-1" },
	}
}

func sampleLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: "f1", Name: "Milk White OHM Betta", Category: models.CategoryLiveFish, Price: 120, Weight: 30, Quantity: 2},
		{ProductID: "s2", Name: "Air Pump One Way", Category: models.CategorySupplies, Price: 99, Weight: 250, Quantity: 1},
	}
}

func sampleDetails() models.ShippingDetails {
	return models.ShippingDetails{
		CustomerName: "Ravi Kumar",
		Address:      "12-3-456, Tank Bund Road",
		City:         "Hyderabad",
		State:        "Telangana",
		Pincode:      "500001",
		Phone:        "+91 99999 99999",
	}
}

func TestAssembleSnapshot(t *testing.T) {
	a := fixedAssembler()
	order, err := a.Assemble(sampleLines(), sampleDetails())
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	if order.OrderID != "ORD-TEST-1" {
		t.Errorf("unexpected order id %q", order.OrderID)
	}
	if order.Subtotal != 339 {
		t.Errorf("expected subtotal 339, got %d", order.Subtotal)
	}
	if order.ShippingCost != 80 {
		t.Errorf("expected shipping 80 for 310g, got %d", order.ShippingCost)
	}
	if order.Total != 419 {
		t.Errorf("expected total 419, got %d", order.Total)
	}
	if order.Status != models.StatusPendingHandoff {
		t.Errorf("expected PENDING_WHATSAPP, got %s", order.Status)
	}
	if !order.CreatedAt.Equal(a.Now()) {
		t.Errorf("timestamp not taken from clock: %v", order.CreatedAt)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := fixedAssembler()
	first, err := a.Assemble(sampleLines(), sampleDetails())
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(sampleLines(), sampleDetails())
	if err != nil {
		t.Fatal(err)
	}
	if DispatchMessage(first) != DispatchMessage(second) {
		t.Error("same input produced different orders")
	}
}

func TestAssembleEmptyCart(t *testing.T) {
	_, err := fixedAssembler().Assemble(nil, sampleDetails())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAssembleMissingFields(t *testing.T) {
	blank := func(mutate func(*models.ShippingDetails)) models.ShippingDetails {
		d := sampleDetails()
		mutate(&d)
		return d
	}

	cases := map[string]models.ShippingDetails{
		"customerName": blank(func(d *models.ShippingDetails) { d.CustomerName = "" }),
		"address":      blank(func(d *models.ShippingDetails) { d.Address = "" }),
		"city":         blank(func(d *models.ShippingDetails) { d.City = "" }),
		"state":        blank(func(d *models.ShippingDetails) { d.State = "" }),
		"pincode":      blank(func(d *models.ShippingDetails) { d.Pincode = "" }),
		"phone":        blank(func(d *models.ShippingDetails) { d.Phone = "" }),
	}

	for field, details := range cases {
		_, err := fixedAssembler().Assemble(sampleLines(), details)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", field, err)
		}
		if err != nil && !strings.Contains(err.Error(), field) {
			t.Errorf("%s: error does not name the field: %v", field, err)
		}
	}
}

func TestAssembleSnapshotIsFrozen(t *testing.T) {
	lines := sampleLines()
	order, err := fixedAssembler().Assemble(lines, sampleDetails())
	if err != nil {
		t.Fatal(err)
	}

	lines[0].Quantity = 40
	if order.Lines[0].Quantity != 2 {
		t.Error("order snapshot shares memory with the cart lines")
	}
}
