package shipping

// Two-tier courier pricing for the serviced zones (T.S. & A.P.):
// under 1kg ships at a flat ₹80, every further kg or part thereof
// adds ₹50.
const (
	baseRate       = 80
	perExtraKg     = 50
	baseWeightGram = 1000
)

// Line is the weight-bearing view of a cart line.
type Line struct {
	Weight   int // grams per unit
	Quantity int
}

// Quote is the derived shipping figure for a set of lines.
type Quote struct {
	TotalWeight int `json:"totalWeight"` // grams
	Cost        int `json:"cost"`        // rupees
}

// Compute returns the total cart weight and its shipping cost.
// A weight of exactly 1000g does not incur a surcharge; 1001g does.
func Compute(lines []Line) Quote {
	totalWeight := 0
	for _, l := range lines {
		totalWeight += l.Weight * l.Quantity
	}

	cost := baseRate
	if totalWeight >= baseWeightGram {
		extra := totalWeight - baseWeightGram
		cost += (extra + 999) / 1000 * perExtraKg
	}

	return Quote{TotalWeight: totalWeight, Cost: cost}
}
