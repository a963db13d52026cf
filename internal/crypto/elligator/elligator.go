package elligator

import (
	"filippo.io/edwards25519/field"
)

// mappingCase identifies one of the four mutually exclusive terminal cases of
// the mapping. The "curve" cases land on the curve itself, the "twist" cases
// on its quadratic twist (folded back via the correction factors).
type mappingCase int

const (
	// caseCurveA: w + X^2*xDen vanished.
	caseCurveA mappingCase = iota
	// caseCurveB: w - X^2*xDen vanished.
	caseCurveB
	// caseTwistA: neither vanished; after twisting the denominator by
	// sqrt(-1), w - X^2*xDen' did not vanish (so w + X^2*xDen' did).
	caseTwistA
	// caseTwistB: after twisting, w - X^2*xDen' vanished.
	caseTwistB
)

// correction pairs the factor applied to the square-root candidate with the
// sign convention of the branch. Branches on the curve force an even x and
// scale X by u and the Z accumulator by v; branches on the twist force an
// odd x and leave both untouched.
type correction struct {
	factor *field.Element
	sign   int
}

// The table is keyed by mappingCase. Exactly one entry applies per input.
var corrections = [4]correction{
	caseCurveA: {factor: constFFFB1, sign: 0},
	caseCurveB: {factor: constFFFB2, sign: 0},
	caseTwistA: {factor: constFFFB3, sign: 1},
	caseTwistB: {factor: constFFFB4, sign: 1},
}

// classify selects the terminal case from the outcomes of the vanishing
// tests. y1Zero and y2Zero cannot both hold: that would need w = 0, and
// w = 2u^2 + 1 is never zero because -1/2 is not a square in this field.
func classify(y1Zero, y2Zero, twistY1Zero bool) mappingCase {
	switch {
	case y1Zero:
		return caseCurveB
	case y2Zero:
		return caseCurveA
	case twistY1Zero:
		return caseTwistB
	default:
		return caseTwistA
	}
}

// divPowM1 sets r = (u/v)^((p+3)/8) and returns r.
//
// The field layer exposes x^((p-5)/8) (Pow22523); the quotient power follows
// from (u/v)^((p+3)/8) = u*v^3 * (u*v^7)^((p-5)/8), which trades the
// inversion for three multiplications.
func divPowM1(r, u, v *field.Element) *field.Element {
	var v3, uv7 field.Element
	v3.Square(v)
	v3.Multiply(&v3, v) // v^3
	uv7.Square(&v3)
	uv7.Multiply(&uv7, v)
	uv7.Multiply(&uv7, u) // u*v^7
	uv7.Pow22523(&uv7)
	r.Multiply(u, &v3)
	r.Multiply(r, &uv7)
	return r
}

// FromFieldElement maps u to a point on the curve. The mapping is
// deterministic and total: every field element lands on a valid point with
// Z != 0. Which of the four cases is taken depends on the input, so the
// running time is data dependent.
func FromFieldElement(u *field.Element) *ProjectivePoint {
	var v, w, xDen, xCand, t, y1, y2 field.Element

	// v = 2*u^2, w = v + 1
	v.Square(u)
	v.Add(&v, &v)
	w.Add(&v, feOne)

	// xDen = w^2 - 2*A^2*u^2
	xDen.Square(&w)
	t.Multiply(constNegASquared, &v)
	xDen.Add(&xDen, &t)

	// Square-root candidate X = (w/xDen)^((p+3)/8).
	divPowM1(&xCand, &w, &xDen)

	// Vanishing tests deciding the branch: y1 = w - X^2*xDen and
	// y2 = w + X^2*xDen for the curve cases, then the same y1 test again
	// with the denominator twisted by sqrt(-1) for the twist cases.
	t.Square(&xCand)
	t.Multiply(&t, &xDen)
	y1.Subtract(&w, &t)
	y2.Add(&w, &t)

	var xDenTwist, tTwist, y1Twist field.Element
	xDenTwist.Multiply(&xDen, constSqrtM1)
	tTwist.Square(&xCand)
	tTwist.Multiply(&tTwist, &xDenTwist)
	y1Twist.Subtract(&w, &tTwist)

	c := corrections[classify(
		y1.Equal(feZero) == 1,
		y2.Equal(feZero) == 1,
		y1Twist.Equal(feZero) == 1,
	)]

	var x, z field.Element
	x.Multiply(&xCand, c.factor)
	z.Set(constNegA)
	if c.sign == 0 {
		// On the curve: X = X*u, z = -A*v = -2*A*u^2.
		x.Multiply(&x, u)
		z.Multiply(&z, &v)
	}

	// Force the parity of x to the branch's sign convention. When a negate
	// happens here x is necessarily nonzero (x = 0 only in the curve cases
	// with u = 0, where the parity already matches).
	if x.IsNegative() != c.sign {
		x.Negate(&x)
	}

	var p ProjectivePoint
	p.Z.Add(&z, &w)
	p.Y.Subtract(&z, &w)
	p.X.Multiply(&x, &p.Z)
	return &p
}
