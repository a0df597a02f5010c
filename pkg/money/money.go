// Package money holds the storefront's single price representation.
//
// Prices are numeric everywhere inside the service. Currency strings such as "$10"
// only appear at the edges (legacy persisted carts, display text) and are turned into
// numbers by Parse, which is the one parser every total in the codebase goes through.
package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Symbol is the display currency symbol
const Symbol = "$"

// Amount is a non-negative price in dollars
type Amount float64

// Parse strips every character that is not a digit or a decimal point and reads the
// longest numeric prefix of what remains. Input without digits parses to 0.
func Parse(s string) Amount {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	end, seenDot, seenDigit := 0, false, false
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else {
			seenDigit = true
		}
		end = i + 1
	}
	if !seenDigit {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned[:end], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(v)
}

// Times returns the amount multiplied by a quantity
func (a Amount) Times(quantity int) Amount {
	return Amount(float64(a) * float64(quantity))
}

// Float64 returns the raw value
func (a Amount) Float64() float64 {
	return float64(a)
}

// String renders the amount the way the catalog shows prices: "$5", "$7.50"
func (a Amount) String() string {
	if a == Amount(math.Trunc(float64(a))) {
		return fmt.Sprintf("%s%d", Symbol, int64(a))
	}
	return fmt.Sprintf("%s%.2f", Symbol, float64(a))
}

// Total renders the amount with two decimals, as order totals are shown: "$35.00"
func (a Amount) Total() string {
	return fmt.Sprintf("%s%.2f", Symbol, float64(a))
}

// MarshalJSON encodes the amount as a JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// UnmarshalJSON accepts both a JSON number and a currency string like "$10"
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid price string: %w", err)
		}
		*a = Parse(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid price number: %w", err)
	}
	*a = Amount(f)
	return nil
}

// DiscountPercent returns the rounded percentage saved against an original price.
// It is 0 when there is no original price or it does not exceed the price.
func DiscountPercent(price, original Amount) int {
	if original <= 0 || original <= price {
		return 0
	}
	return int(math.Round(float64(original-price) / float64(original) * 100))
}
