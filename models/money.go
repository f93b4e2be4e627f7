package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is an amount of euro cents. All prices, fees and totals are carried
// as integer cents so sums reconcile exactly.
type Cents int64

func Euros(euros, cents int64) Cents {
	return Cents(euros*100 + cents)
}

func (c Cents) Mul(n int) Cents {
	return c * Cents(n)
}

// Format renders the amount with a German decimal comma, e.g. "8,50".
func (c Cents) Format() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d,%02d", sign, v/100, v%100)
}

func (c Cents) String() string {
	return c.Format() + " €"
}

// ParseCents reads "8.50", "8,50" or "8" into cents.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	euros, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	if strings.HasPrefix(whole, "-") {
		return Cents(euros*100 - cents), nil
	}
	return Cents(euros*100 + cents), nil
}
