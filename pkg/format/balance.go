// Package format holds display helpers for token amounts and addresses.
package format

import (
	"math/big"
	"strings"
)

// DefaultDecimals is the number of decimals of the chain's native token.
const DefaultDecimals = 6

// FormatTokenBalance converts a base-unit integer amount into a display
// string with exactly decimals fraction digits and comma-grouped thousands.
// Empty or non-numeric input yields "0".
func FormatTokenBalance(amount string, decimals int) string {
	amount = strings.TrimSpace(amount)
	// big.Rat also parses "a/b" fractions, which are not amounts
	if amount == "" || decimals < 0 || strings.Contains(amount, "/") {
		return "0"
	}
	r, ok := new(big.Rat).SetString(amount)
	if !ok {
		return "0"
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Quo(r, new(big.Rat).SetInt(scale))

	// FloatString rounds half away from zero.
	s := r.FloatString(decimals)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := groupThousands(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// HumanAmount strips grouping separators from a formatted balance.
func HumanAmount(display string) string {
	return strings.ReplaceAll(display, ",", "")
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
