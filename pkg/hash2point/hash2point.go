// Package hash2point turns 32-byte digests into points on the edwards25519
// curve, implementing the deterministic hash-to-point construction that
// CryptoNote-style ring signatures and key images are built on.
//
// The core entry point is HashToPoint, which accepts any 32-byte input and
// always produces a valid compressed point. HashToEC, HashToScalar and
// KeyImage layer the usual CN-fast-hash (Keccak-256) conventions on top.
//
// The mapping itself runs in variable time: which branch of the construction
// executes depends on the input. It is designed for public inputs (hashes of
// public keys); never feed it secret-derived data.
package hash2point

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-hash2point/internal/crypto/elligator"
	"github.com/smallyu/go-hash2point/internal/crypto/fe"
)

const (
	// DigestSize is the required input length of HashToPoint.
	DigestSize = 32

	// PointSize is the length of a compressed curve point.
	PointSize = 32
)

// HashToPoint maps a 32-byte digest to a compressed curve point.
//
// The mapping is total and deterministic: every 32-byte input (including
// values at or above the field order) produces a valid point, and equal
// inputs produce equal outputs. The output holds the y coordinate in 255
// little-endian bits plus the parity of x in the top bit of the last byte.
func HashToPoint(digest []byte) ([PointSize]byte, error) {
	var out [PointSize]byte
	if len(digest) != DigestSize {
		return out, ErrInvalidDigestLength
	}

	var buf [DigestSize]byte
	copy(buf[:], digest)

	u := fe.Decode(&buf)
	p := elligator.FromFieldElement(u)
	return p.Compress(), nil
}

// HashToEC hashes arbitrary data with Keccak-256, maps the digest onto the
// curve, and multiplies by the cofactor 8, landing the result in the prime
// order subgroup. This matches CryptoNote's hash_to_ec, the base point used
// for key images.
func HashToEC(data []byte) (*edwards25519.Point, error) {
	digest := keccak256(data)
	compressed, err := HashToPoint(digest[:])
	if err != nil {
		return nil, err
	}

	p, err := new(edwards25519.Point).SetBytes(compressed[:])
	if err != nil {
		// Mapped points are on the curve by construction, so a decoding
		// failure means a defect in the mapping itself.
		return nil, ErrPointDecode
	}
	return p.MultByCofactor(p), nil
}

// HashToScalar hashes arbitrary data with Keccak-256 and reduces the digest
// modulo the group order, matching CryptoNote's hash_to_scalar.
func HashToScalar(data []byte) *edwards25519.Scalar {
	digest := keccak256(data)

	// The digest is 32 bytes but SetUniformBytes wants 64; zero-extending
	// gives exactly the little-endian mod-order reduction of the digest.
	var wide [64]byte
	copy(wide[:DigestSize], digest[:])
	s, _ := edwards25519.NewScalar().SetUniformBytes(wide[:])
	return s
}

// KeyImage computes secret * HashToEC(publicKey), the key image that makes
// ring signature double spends linkable. publicKey is the 32-byte compressed
// encoding of the signer's public key.
func KeyImage(secret *edwards25519.Scalar, publicKey []byte) (*edwards25519.Point, error) {
	base, err := HashToEC(publicKey)
	if err != nil {
		return nil, err
	}
	return new(edwards25519.Point).ScalarMult(secret, base), nil
}

// keccak256 is CN-fast-hash: Keccak with the original 0x01 padding, not the
// NIST SHA3 variant.
func keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
