package utils

import "github.com/shopspring/decimal"

// FormatPrice formats a decimal amount as a display string like "$1,234.56".
// Always two decimal places; comma as thousands separator. Display only:
// arithmetic stays in decimal.Decimal.
func FormatPrice(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	s := amount.StringFixed(2)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:] // includes the dot

	if len(intPart) > 3 {
		grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
		rem := len(intPart) % 3
		if rem == 0 {
			rem = 3
		}
		grouped = append(grouped, intPart[:rem]...)
		for i := rem; i < len(intPart); i += 3 {
			grouped = append(grouped, ',')
			grouped = append(grouped, intPart[i:i+3]...)
		}
		intPart = string(grouped)
	}

	if neg {
		return "-$" + intPart + fracPart
	}
	return "$" + intPart + fracPart
}
