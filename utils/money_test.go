package utils

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1.000"},
		{12500, "$12.500"},
		{1234567, "$1.234.567"},
		{-12500, "-$12.500"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
