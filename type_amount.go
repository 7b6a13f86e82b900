package goldwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents a quantity of in-game gold.
//
// Raw deal amounts are whole numbers, but interest compounding produces
// fractional values, so Amount keeps full decimal precision and only rounds
// on display.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) LessThanOrEqual(b Amount) bool    { return a.value.LessThanOrEqual(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Mul(b Amount) Amount { return Amount{value: a.value.Mul(b.value)} }

// Floor truncates toward negative infinity, the rounding every displayed
// interest-adjusted figure goes through.
func (a Amount) Floor() int64 { return a.value.Floor().IntPart() }

// InexactFloat64 returns the nearest float64, for charting.
func (a Amount) InexactFloat64() float64 { return a.value.InexactFloat64() }

// gold has no ISO code; register one so the go-money formatter can be used
// for display.
func init() {
	money.AddCurrency("GOLD", "g", "1 $", ".", ",", 0)
}

// String formats the amount as whole gold, e.g. "1,250 g".
func (a Amount) String() string {
	cur := money.GetCurrency("GOLD")
	return cur.Formatter().Format(a.value.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign for positive values.
func (a Amount) SignedString() string {
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}
