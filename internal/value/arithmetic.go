package value

// promote classifies a numeric Value for the arithmetic promotion rules in
// spec.md §4.C2: float beats everything; otherwise widen to the larger
// unsigned kind unless a signed operand is present, in which case the
// result is signed 32-bit.
type numClass int

const (
	classNone numClass = iota
	classUnsigned
	classSigned
	classFloat
)

func (v Value) numClass() (numClass, float64, bool) {
	switch v.kind {
	case U8, U16, U32, U64:
		f, _ := v.AsF64WithoutRational()
		return classUnsigned, f, true
	case I16, I32:
		return classSigned, float64(v.i64), true
	case F64:
		return classFloat, v.f64, true
	case RationalUKind:
		return classFloat, v.ratU.quotient(), true
	case RationalSKind:
		return classFloat, v.rationalS.quotient(), true
	}
	return classNone, 0, false
}

// AsF64WithoutRational reads the raw unsigned/signed bit patterns as a float
// without going through the rational-quotient path AsF64 uses.
func (v Value) AsF64WithoutRational() (float64, bool) {
	switch v.kind {
	case U8, U16, U32, U64:
		return float64(v.u64), true
	case I16, I32:
		return float64(v.i64), true
	}
	return 0, false
}

func combine(a, b Value, op func(x, y float64) float64) Value {
	ca, fa, oka := a.numClass()
	cb, fb, okb := b.numClass()
	if !oka || !okb {
		return NewEmpty()
	}
	result := op(fa, fb)
	if ca == classFloat || cb == classFloat {
		return NewF64(result)
	}
	if ca == classSigned || cb == classSigned {
		return NewI32(int32(result))
	}
	// both unsigned: U64 if either operand is U64, otherwise U32 (so
	// U8/U16 operands widen to U32).
	widest := U32
	if a.kind == U64 || b.kind == U64 {
		widest = U64
	}
	if widest == U64 {
		return NewU64(uint64(result))
	}
	return NewU32(uint32(int64(result)))
}

func Add(a, b Value) Value { return combine(a, b, func(x, y float64) float64 { return x + y }) }
func Sub(a, b Value) Value { return combine(a, b, func(x, y float64) float64 { return x - y }) }
func Mul(a, b Value) Value { return combine(a, b, func(x, y float64) float64 { return x * y }) }

// Div follows the same promotion rule as the others; division by zero is
// the runtime library's concern (safe_division), not this low-level op,
// which returns +/-Inf or NaN per ordinary float division and lets the
// caller decide (internal/emit maps a plain "/" straight to Div; only a
// Node::SafeDivision goes through runtime.SafeDivision).
func Div(a, b Value) Value { return combine(a, b, func(x, y float64) float64 { return x / y }) }
