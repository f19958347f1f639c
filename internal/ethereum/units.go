package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EtherDecimals = 18
	GweiDecimals  = 9
)

var ErrInvalidAmount error = errors.New("invalid amount")

// ParseUnits converts a decimal string such as "1.5" into an integer amount
// scaled by 10^decimals. Fractions finer than the smallest unit are rejected.
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, decimals)
	}

	return scaled.BigInt(), nil
}

func ParseEther(amount string) (*big.Int, error) {
	return ParseUnits(amount, EtherDecimals)
}

// FormatUnits renders value / 10^decimals without trailing zeros, keeping at
// least one fractional digit ("1.0", "0.000021").
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(value, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func FormatEther(value *big.Int) string {
	return FormatUnits(value, EtherDecimals)
}

// FormatFixed renders value / 10^decimals with exactly places fractional digits.
func FormatFixed(value *big.Int, decimals int32, places int32) string {
	if value == nil {
		value = new(big.Int)
	}
	return decimal.NewFromBigInt(value, -decimals).StringFixed(places)
}

// ParseInteger reads a base-10 integer as returned by block explorers.
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, s)
	}
	return v, nil
}
