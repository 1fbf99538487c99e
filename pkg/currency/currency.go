// Package currency converts monetary amounts between the supported currency
// codes using a static rate table. Conversion is a pure function of its
// inputs: the table is passed in explicitly rather than read from process
// state, so results are deterministic and testable in isolation.
package currency

import (
	"errors"
	"fmt"

	"github.com/finbooks/finbooks/pkg/models"
	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency is returned when a code has no entry in the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// RateTable maps a currency code to its rate relative to the base unit:
// how many units of that currency one base unit buys.
type RateTable map[models.CurrencyCode]decimal.Decimal

// DefaultRates returns the static rate table used by the application wiring.
// USD is the base unit.
func DefaultRates() RateTable {
	return RateTable{
		models.USD: decimal.NewFromInt(1),
		models.EUR: decimal.RequireFromString("0.92"),
		models.GBP: decimal.RequireFromString("0.79"),
		models.INR: decimal.RequireFromString("83.30"),
	}
}

// Convert converts amount (in minor units of from) into minor units of to,
// computing amount / rateFrom * rateTo and rounding to the nearest minor
// unit. When from equals to the amount is returned untouched so repeated
// identity conversions cannot accumulate rounding drift.
func Convert(table RateTable, amount int64, from, to models.CurrencyCode) (int64, error) {
	if from == to {
		if _, ok := table[from]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
		}
		return amount, nil
	}

	rateFrom, ok := table[from]
	if !ok || rateFrom.IsZero() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	rateTo, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	converted := decimal.NewFromInt(amount).Div(rateFrom).Mul(rateTo)
	return converted.Round(0).IntPart(), nil
}
