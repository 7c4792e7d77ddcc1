package domain

import "github.com/shopspring/decimal"

// Money is a decimal amount that goes over the wire as a bare JSON number.
// The backend models prices as floats and rejects quoted numbers on some
// routes, while decimal.Decimal quotes by default. Decoding accepts either.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d.
func NewMoney(d decimal.Decimal) Money { return Money{Decimal: d} }

// MustParseMoney parses s and panics on malformed input. Meant for literals.
func MustParseMoney(s string) Money { return Money{Decimal: decimal.RequireFromString(s)} }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}
