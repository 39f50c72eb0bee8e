package util

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{5000, "$5,000"},
		{1234.5, "$1,234.5"},
		{1234567.89, "$1,234,567.89"},
		{-42.1, "$-42.1"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"net_revenue_change", "Net Revenue Change"},
		{"balance", "Balance"},
		{"total_profit", "Total Profit"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatKey(tt.in); got != tt.want {
			t.Errorf("FormatKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
