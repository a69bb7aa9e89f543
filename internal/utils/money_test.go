package utils

import (
	"encoding/json"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    int64
		wantErr bool
	}{
		{"string whole", "500", 50000, false},
		{"string two decimals", "500.00", 50000, false},
		{"string one decimal", "499.5", 49950, false},
		{"string cents only", ".75", 75, false},
		{"string negative", "-12.50", -1250, false},
		{"json number", json.Number("199.99"), 19999, false},
		{"float64", float64(500), 50000, false},
		{"float64 fraction", 499.99, 49999, false},
		{"int", 500, 50000, false},
		{"float64 negative", -12.5, -1250, false},
		{"three decimals", "500.001", 0, true},
		{"float64 three decimals", 500.129, 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
		{"nil", nil, 0, true},
		{"unsupported type", []string{"500"}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoney(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%v): want error, got %d", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%v): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseMoney(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{50000, "500.00"},
		{49950, "499.50"},
		{75, "0.75"},
		{5, "0.05"},
		{0, "0.00"},
		{-1250, "-12.50"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.cents); got != tc.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
