package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	RUB  Currency = "RUB"
	USDT Currency = "USDT"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Valid() bool {
	return c == RUB || c == USDT
}

// Scale is the number of fractional digits of the smallest currency unit.
func (c Currency) Scale() int32 {
	if c == USDT {
		return 6
	}
	return 2
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return c, nil
}

// Amount is a signed quantity of minor currency units (kopecks for RUB,
// micro-USDT for USDT). Money never travels as a float.
type Amount int64

func (a Amount) Decimal(c Currency) decimal.Decimal {
	return decimal.New(int64(a), -c.Scale())
}

func (a Amount) Format(c Currency) string {
	return a.Decimal(c).StringFixed(c.Scale())
}

func (a Amount) Neg() Amount {
	return -a
}

// AmountFromDecimal converts d into minor units, failing when d carries more
// precision than the currency allows.
func AmountFromDecimal(d decimal.Decimal, c Currency) (Amount, error) {
	shifted := d.Shift(c.Scale())
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("amount %s exceeds %s precision", d.String(), c)
	}
	return Amount(shifted.IntPart()), nil
}

func ParseAmount(s string, c Currency) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	return AmountFromDecimal(d, c)
}
