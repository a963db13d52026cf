// Package elligator maps field elements of GF(2^255 - 19) onto the twisted
// Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2 using the Elligator2-style
// construction from CryptoNote, and compresses the result into the standard
// 32-byte Edwards point encoding.
//
// Everything in this package runs in variable time. The mapping is meant for
// public inputs (hashes of public keys); do not feed it secrets.
package elligator

import (
	"filippo.io/edwards25519/field"
)

// ProjectivePoint is a point (X:Y:Z) on the twisted Edwards curve,
// representing the affine point (X/Z, Y/Z). Points produced by this package
// always have Z != 0.
type ProjectivePoint struct {
	X, Y, Z field.Element
}

// Compress encodes the point in the standard 32-byte format: 255 bits for the
// canonical little-endian y coordinate, with the top bit of the last byte
// carrying the parity of the x coordinate.
func (p *ProjectivePoint) Compress() [32]byte {
	var recip, x, y field.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)

	var out [32]byte
	copy(out[:], y.Bytes())
	out[31] ^= byte(x.IsNegative()) << 7
	return out
}

// OnCurve reports whether the point satisfies the curve equation
// -x^2 + y^2 = 1 + d*x^2*y^2.
//
// The check is always compiled in, never gated behind a build flag: a false
// return can only mean a defect in the mapping or in the field layer, never
// a legitimate runtime condition, and the test suite leans on it.
func (p *ProjectivePoint) OnCurve() bool {
	var recip, x, y, check field.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)
	x.Square(&x)
	y.Square(&y)

	// d*x^2*y^2 + x^2 - y^2 + 1 must vanish.
	check.Multiply(&x, &y)
	check.Multiply(constD, &check)
	check.Add(&check, &x)
	check.Subtract(&check, &y)
	check.Add(&check, feOne)
	return check.Equal(feZero) == 1
}
