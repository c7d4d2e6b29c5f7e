package cart

import "testing"

func TestRegistryReturnsSameCart(t *testing.T) {
	r := NewRegistry()

	a := r.Get("session-1")
	a.AddItem(betta, 2, -1)

	if again := r.Get("session-1"); again.ItemCount() != 2 {
		t.Error("registry returned a different cart for the same session")
	}
	if other := r.Get("session-2"); other.ItemCount() != 0 {
		t.Error("sessions share cart state")
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	r.Get("session-1").AddItem(betta, 2, -1)
	r.Drop("session-1")

	if c := r.Get("session-1"); c.ItemCount() != 0 {
		t.Error("dropped session kept its cart")
	}
}
