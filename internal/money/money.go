// Package money rounds currency amounts with decimal arithmetic so that
// values such as 299.99 x 3 come out as 899.97 rather than a binary
// approximation.
package money

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

var decimalCtx = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(34)
	c.Rounding = apd.RoundHalfUp
	return c
}()

// Round rounds f to the given number of decimal places.
func Round(f float64, places int32) float64 {
	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		panic(fmt.Sprintf("money: invalid amount %v: %v", f, err))
	}
	return quantize(&d, places)
}

// Mul returns price x quantity rounded to cents.
func Mul(price float64, quantity int) float64 {
	var p, q, result apd.Decimal
	if _, err := p.SetFloat64(price); err != nil {
		panic(fmt.Sprintf("money: invalid price %v: %v", price, err))
	}
	q.SetInt64(int64(quantity))
	if _, err := decimalCtx.Mul(&result, &p, &q); err != nil {
		panic(fmt.Sprintf("money: multiply %v by %d: %v", price, quantity, err))
	}
	return quantize(&result, 2)
}

// Div returns amount / divisor rounded to cents.
func Div(amount, divisor int) float64 {
	var a, b, result apd.Decimal
	a.SetInt64(int64(amount))
	b.SetInt64(int64(divisor))
	if _, err := decimalCtx.Quo(&result, &a, &b); err != nil {
		panic(fmt.Sprintf("money: divide %d by %d: %v", amount, divisor, err))
	}
	return quantize(&result, 2)
}

func quantize(d *apd.Decimal, places int32) float64 {
	var rounded apd.Decimal
	if _, err := decimalCtx.Quantize(&rounded, d, -places); err != nil {
		panic(fmt.Sprintf("money: round %s: %v", d, err))
	}
	f, err := rounded.Float64()
	if err != nil {
		panic(fmt.Sprintf("money: convert %s: %v", &rounded, err))
	}
	return f
}
