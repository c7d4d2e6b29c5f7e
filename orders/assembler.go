package orders

import (
	"errors"
	"fmt"
	"time"

	"mvs/models"
	"mvs/shipping"
)

// ErrValidation covers every locally recoverable assembly failure:
// empty cart or a missing shipping field. Nothing is committed when it
// is returned.
var ErrValidation = errors.New("validation failed")

// Assembler freezes a cart plus shipping details into an Order. The
// clock and id source are injectable so assembly is deterministic
// under test.
type Assembler struct {
	Now   func() time.Time
	NewID func(t time.Time) string
}

func NewAssembler() *Assembler {
	return &Assembler{
		Now: time.Now,
		NewID: func(t time.Time) string {
			return fmt.Sprintf("ORD-%d", t.UnixMilli())
		},
	}
}

func requireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, name)
	}
	return nil
}

// Assemble computes the shipping cost over the lines as they are right
// now and returns a PENDING_WHATSAPP order snapshot. The order is
// never recomputed or mutated afterwards.
func (a *Assembler) Assemble(lines []models.CartLine, details models.ShippingDetails) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	fields := []struct{ name, value string }{
		{"customerName", details.CustomerName},
		{"address", details.Address},
		{"city", details.City},
		{"state", details.State},
		{"pincode", details.Pincode},
		{"phone", details.Phone},
	}
	for _, f := range fields {
		if err := requireField(f.name, f.value); err != nil {
			return models.Order{}, err
		}
	}

	subtotal := 0
	shipLines := make([]shipping.Line, 0, len(lines))
	for _, l := range lines {
		subtotal += l.Price * l.Quantity
		shipLines = append(shipLines, shipping.Line{Weight: l.Weight, Quantity: l.Quantity})
	}
	quote := shipping.Compute(shipLines)

	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)

	now := a.Now()
	return models.Order{
		OrderID:         a.NewID(now),
		Lines:           snapshot,
		ShippingDetails: details,
		Subtotal:        subtotal,
		ShippingCost:    quote.Cost,
		Total:           subtotal + quote.Cost,
		Status:          models.StatusPendingHandoff,
		CreatedAt:       now,
	}, nil
}
