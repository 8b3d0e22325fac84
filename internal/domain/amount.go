package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// AmountDecimals is the number of fractional digits of the tipped coin.
// One whole coin is 10^AmountDecimals base units.
const AmountDecimals = 8

var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// Amount is a tip amount held both as typed and in base units.
type Amount struct {
	text  string
	units *big.Int
}

// ParseAmount converts a decimal string to base units without going
// through floating point: "1.5" is 150000000 and "0.00000001" is 1.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." || !amountPattern.MatchString(s) {
		return Amount{}, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > AmountDecimals {
		return Amount{}, fmt.Errorf("%w: at most %d decimal places", ErrInvalidAmount, AmountDecimals)
	}
	frac += strings.Repeat("0", AmountDecimals-len(frac))

	units, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return Amount{}, ErrInvalidAmount
	}
	if units.Sign() == 0 {
		return Amount{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}

	return Amount{text: s, units: units}, nil
}

// Units returns a copy of the amount in base units.
func (a Amount) Units() *big.Int {
	if a.units == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.units)
}

// String returns the amount as the user typed it.
func (a Amount) String() string {
	return a.text
}
