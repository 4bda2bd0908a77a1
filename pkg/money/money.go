// Package money formats claim amounts for display.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level variable
// initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Symbol returns the display prefix for the currency. Currencies without a
// known symbol use their code followed by a space.
func (c Currency) Symbol() string {
	if c.code == "USD" {
		return "$"
	}
	return c.code + " "
}

// USD is the currency claim amounts are recorded in.
var USD = MustCurrency("USD")

// Money is an immutable amount with currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money value from a decimal amount and currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// Display formats the amount with a currency symbol, thousands separators
// and two decimals, for example "$12,000.00".
func (m Money) Display() string {
	fixed := m.amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if m.amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(m.currency.Symbol())
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatUSD is shorthand for New(amount, USD).Display().
func FormatUSD(amount decimal.Decimal) string {
	return New(amount, USD).Display()
}
