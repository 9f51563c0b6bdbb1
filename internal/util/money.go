package util

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes every displayed amount
const RupeeSymbol = "₹"

// DisplayDateLayout matches the en-IN short date (dd/mm/yyyy)
const DisplayDateLayout = "02/01/2006"

// FormatINR renders an amount the way en-IN locales do: two decimals and
// lakh/crore digit grouping, e.g. 1234567.8 -> "₹12,34,567.80".
// Negative amounts put the sign before the symbol.
func FormatINR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + RupeeSymbol + GroupIndian(amount.StringFixed(2))
}

// GroupIndian inserts en-IN thousands separators into an unsigned decimal string.
// The last three integer digits form one group and the rest are grouped in pairs.
func GroupIndian(s string) string {
	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	if len(intPart) <= 3 {
		return intPart + fracPart
	}

	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail + fracPart
}

// FormatDisplayDate renders a calendar date as dd/mm/yyyy
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatPercent rounds a percentage to a whole number for progress labels
func FormatPercent(p decimal.Decimal) string {
	return p.Round(0).String() + "%"
}
