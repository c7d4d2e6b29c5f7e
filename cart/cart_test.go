package cart

import (
	"testing"

	"mvs/models"
)

var betta = models.Product{
	ProductID:  "f1",
	Name:       "Milk White OHM Betta",
	Category:   models.CategoryLiveFish,
	Price:      120,
	Weight:     30,
	StockCount: 15,
}

var pump = models.Product{
	ProductID:  "s2",
	Name:       "Air Pump One Way",
	Category:   models.CategorySupplies,
	Price:      99,
	Weight:     250,
	StockCount: 20,
}

func TestAddItemMergesLines(t *testing.T) {
	c := New()
	if err := c.AddItem(betta, 3, -1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := c.AddItem(betta, 4, -1); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", lines[0].Quantity)
	}
}

func TestAddItemClampsAtFifty(t *testing.T) {
	c := New()
	c.AddItem(betta, 40, -1)
	c.AddItem(betta, 40, -1)

	if got := c.Lines()[0].Quantity; got != MaxQuantity {
		t.Errorf("expected clamp at %d, got %d", MaxQuantity, got)
	}
}

func TestAddItemClampsToStock(t *testing.T) {
	c := New()
	c.AddItem(betta, 30, betta.StockCount)
	if got := c.Lines()[0].Quantity; got != 15 {
		t.Errorf("expected clamp to stock 15, got %d", got)
	}
}

func TestAddItemRejectsNonPositive(t *testing.T) {
	c := New()
	if err := c.AddItem(betta, 0, -1); err != ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("rejected add mutated the cart")
	}
}

func TestSubtotalOrderIndependent(t *testing.T) {
	a := New()
	a.AddItem(betta, 2, -1)
	a.AddItem(pump, 3, -1)

	b := New()
	b.AddItem(pump, 3, -1)
	b.AddItem(betta, 2, -1)

	want := 2*120 + 3*99
	if a.Subtotal() != want || b.Subtotal() != want {
		t.Errorf("subtotals %d/%d, want %d", a.Subtotal(), b.Subtotal(), want)
	}
	if a.ItemCount() != 5 || b.ItemCount() != 5 {
		t.Errorf("item counts %d/%d, want 5", a.ItemCount(), b.ItemCount())
	}
}

func TestUpdateQuantityIdempotent(t *testing.T) {
	c := New()
	c.AddItem(betta, 2, -1)

	if err := c.UpdateQuantity("f1", 9, -1); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := c.UpdateQuantity("f1", 9, -1); err != nil {
		t.Fatalf("repeated update failed: %v", err)
	}
	if got := c.Lines()[0].Quantity; got != 9 {
		t.Errorf("expected quantity 9, got %d", got)
	}
}

func TestUpdateQuantityRejectsOutOfRange(t *testing.T) {
	c := New()
	c.AddItem(betta, 2, -1)

	for _, q := range []int{0, -3, 51, 500} {
		if err := c.UpdateQuantity("f1", q, -1); err != ErrInvalidQuantity {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
	if got := c.Lines()[0].Quantity; got != 2 {
		t.Errorf("rejected update mutated quantity to %d", got)
	}
}

func TestUpdateQuantityAbsentIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(betta, 2, -1)
	if err := c.UpdateQuantity("nope", 5, -1); err != nil {
		t.Errorf("expected nil for absent id, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("absent update changed line count")
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	c := New()
	c.AddItem(betta, 2, -1)

	c.RemoveItem("missing")
	if c.Len() != 1 {
		t.Fatalf("removing an absent id changed the cart")
	}

	c.RemoveItem("f1")
	c.RemoveItem("f1")
	if c.Len() != 0 {
		t.Fatalf("expected empty cart after remove")
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(pump, 1, -1)
	c.AddItem(betta, 1, -1)

	lines := c.Lines()
	if lines[0].ProductID != "s2" || lines[1].ProductID != "f1" {
		t.Errorf("unexpected display order: %s, %s", lines[0].ProductID, lines[1].ProductID)
	}
}

func TestQuoteFollowsCartState(t *testing.T) {
	c := New()
	c.AddItem(betta, 2, -1) // 60g
	c.AddItem(pump, 1, -1)  // 250g

	q := c.Quote()
	if q.TotalWeight != 310 || q.Cost != 80 {
		t.Errorf("expected 310g at ₹80, got %dg at ₹%d", q.TotalWeight, q.Cost)
	}

	c.UpdateQuantity("s2", 4, -1) // 60 + 1000 = 1060g
	q = c.Quote()
	if q.TotalWeight != 1060 || q.Cost != 130 {
		t.Errorf("expected 1060g at ₹130, got %dg at ₹%d", q.TotalWeight, q.Cost)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(betta, 2, -1)
	c.Clear()

	if c.Len() != 0 || c.Subtotal() != 0 || c.ItemCount() != 0 {
		t.Errorf("clear left state behind")
	}
	if q := c.Quote(); q.TotalWeight != 0 || q.Cost != 80 {
		t.Errorf("cleared cart quote: %+v", q)
	}
}
