package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney renders an amount of cents as a decimal string ("500.00").
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseMoney parses a fare value as it arrives from JSON (string, number
// or json.Number) into an integer amount of cents. At most two decimal
// places are accepted; anything else is an error.
func ParseMoney(v any) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("amount is required")
	case string:
		return parseMoneyString(t)
	case json.Number:
		return parseMoneyString(t.String())
	case float64:
		// JSON numbers decode as float64. Same rule as strings: at most
		// two decimal places, allowing for float representation error.
		scaled := t * 100
		cents := math.Round(scaled)
		if math.Abs(scaled-cents) > 1e-6 {
			return 0, fmt.Errorf("invalid amount %v: too many decimal places", t)
		}
		return int64(cents), nil
	case int:
		return int64(t) * 100, nil
	case int64:
		return t * 100, nil
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}

func parseMoneyString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	var f int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q: too many decimal places", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}
