package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{80, "₹80"},
		{339, "₹339"},
		{1000, "₹1,000"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{10000000, "₹1,00,00,000"},
	}

	for _, c := range cases {
		if got := FormatINR(c.amount); got != c.want {
			t.Errorf("FormatINR(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	for _, n := range []int{1, 12, 16} {
		if got := GenerateRandomString(n); len(got) != n {
			t.Errorf("expected length %d, got %d", n, len(got))
		}
	}
}
