package shipping

import "testing"

func quoteFor(weight int) Quote {
	return Compute([]Line{{Weight: weight, Quantity: 1}})
}

func TestComputeTiers(t *testing.T) {
	cases := []struct {
		weight int
		cost   int
	}{
		{0, 80},
		{1, 80},
		{999, 80},
		{1000, 80},
		{1001, 130},
		{1999, 130},
		{2000, 130},
		{2001, 180},
		{5500, 330},
	}

	for _, c := range cases {
		got := quoteFor(c.weight)
		if got.Cost != c.cost {
			t.Errorf("weight %d: expected cost %d, got %d", c.weight, c.cost, got.Cost)
		}
		if got.TotalWeight != c.weight {
			t.Errorf("weight %d: expected total weight %d, got %d", c.weight, c.weight, got.TotalWeight)
		}
	}
}

func TestComputeEmptyCart(t *testing.T) {
	got := Compute(nil)
	if got.TotalWeight != 0 {
		t.Errorf("expected zero weight, got %d", got.TotalWeight)
	}
	if got.Cost != 80 {
		t.Errorf("expected flat base cost 80, got %d", got.Cost)
	}
}

func TestComputeMultipleLines(t *testing.T) {
	// two bettas plus an air pump
	got := Compute([]Line{
		{Weight: 30, Quantity: 2},
		{Weight: 250, Quantity: 1},
	})
	if got.TotalWeight != 310 {
		t.Errorf("expected total weight 310, got %d", got.TotalWeight)
	}
	if got.Cost != 80 {
		t.Errorf("expected cost 80, got %d", got.Cost)
	}

	// ten food tins push the cart into tier 2
	got = Compute([]Line{{Weight: 150, Quantity: 10}})
	if got.TotalWeight != 1500 {
		t.Errorf("expected total weight 1500, got %d", got.TotalWeight)
	}
	if got.Cost != 130 {
		t.Errorf("expected cost 130, got %d", got.Cost)
	}
}

func TestComputeNeverBelowBase(t *testing.T) {
	for w := 0; w <= 4000; w += 37 {
		if got := quoteFor(w); got.Cost < 80 {
			t.Fatalf("weight %d: cost %d fell below base rate", w, got.Cost)
		}
	}
}
