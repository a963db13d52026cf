package elligator

import (
	"encoding/hex"

	"filippo.io/edwards25519/field"
)

// Curve constant table. All values are canonical little-endian encodings of
// elements of GF(2^255 - 19), decoded once at package init and never written
// to afterwards, so they are safe for concurrent reads without locking.
//
// A = 486662 is the Montgomery parameter of curve25519. The four correction
// factors are the square roots applied to the candidate X in each of the four
// terminal cases of the mapping. The output of the mapping is invariant under
// which square root is chosen for each constant (the sign of X is forced at
// the end), so the even representatives are embedded.
var (
	// d = -121665/121666, the twisted Edwards curve parameter.
	constD = mustElement("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")

	// sqrt(-1)
	constSqrtM1 = mustElement("b0a00e4a271beec478e42fad0618432fa7d7fb3d99004d2b0bdfc14f8024832b")

	// -A
	constNegA = mustElement("e792f8ffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")

	// -A^2
	constNegASquared = mustElement("c9e33ddbc8ffffffffffffffffffffffffffffffffffffffffffffffffffff7f")

	// sqrt(-2*A*(A+2))
	constFFFB1 = mustElement("ee411c327569a7228d732ab9a80494d1e319fb4137c5a920171bd6daeffb717e")

	// sqrt(2*A*(A+2))
	constFFFB2 = mustElement("e09a7c608364ded2dff756044603de51be5f16c0b751d491f62c5a040a1e064d")

	// sqrt(-sqrt(-1)*A*(A+2))
	constFFFB3 = mustElement("662c3017877d1b58294296a54eff2440eda20d3f404695b8ef08c2140d114a67")

	// sqrt(sqrt(-1)*A*(A+2))
	constFFFB4 = mustElement("8691b3b603193d85494a3fa108fc46ee2e43f77e88f4c026f9db671003f3431a")

	feZero = new(field.Element).Zero()
	feOne  = new(field.Element).One()
)

// mustElement decodes a canonical hex constant. Only called on package-level
// literals, so any failure is a build-time defect.
func mustElement(s string) *field.Element {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("elligator: bad constant hex: " + err.Error())
	}
	e, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic("elligator: bad constant encoding: " + err.Error())
	}
	return e
}
