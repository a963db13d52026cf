// Package fe decodes 32-byte buffers into field elements of GF(2^255 - 19).
//
// The decoding here differs from the usual ed25519 one (RFC 8032) in a way
// that matters: the top bit of the last byte is NOT discarded. Every one of
// the 2^256 possible bit patterns is accepted and reduced modulo the field
// order, so two different buffers can decode to the same element.
package fe

import (
	"filippo.io/edwards25519/field"
)

// load3 reads a 24-bit little-endian integer.
func load3(b []byte) int64 {
	return int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16
}

// load4 reads a 32-bit little-endian integer.
func load4(b []byte) int64 {
	return int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16 | int64(b[3])<<24
}

// Decode interprets src as a 256-bit little-endian integer and returns the
// field element it represents modulo 2^255 - 19.
//
// The buffer is unpacked into ten signed limbs in mixed radix ~2^25.5. Two
// carry passes then bring every limb within its bound: the first pass
// handles the odd limbs, with the carry out of the highest limb wrapping
// around into the lowest one multiplied by 19 (this is where values at or
// above 2^255 fold back into the field); the second pass handles the even
// limbs. The reduced limbs are repacked into canonical bytes and handed to
// the field layer.
func Decode(src *[32]byte) *field.Element {
	s := src[:]
	h0 := load4(s)
	h1 := load3(s[4:]) << 6
	h2 := load3(s[7:]) << 5
	h3 := load3(s[10:]) << 3
	h4 := load3(s[13:]) << 2
	h5 := load4(s[16:])
	h6 := load3(s[20:]) << 7
	h7 := load3(s[23:]) << 5
	h8 := load3(s[26:]) << 4
	h9 := load3(s[29:]) << 2

	carry9 := (h9 + 1<<24) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25
	carry1 := (h1 + 1<<24) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry3 := (h3 + 1<<24) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry5 := (h5 + 1<<24) >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry7 := (h7 + 1<<24) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry0 := (h0 + 1<<25) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry2 := (h2 + 1<<25) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry4 := (h4 + 1<<25) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry6 := (h6 + 1<<25) >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry8 := (h8 + 1<<25) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	buf := canonicalBytes(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)

	// The repacked value is fully reduced, so SetBytes cannot fail and its
	// bit-255 masking never fires.
	e, _ := new(field.Element).SetBytes(buf[:])
	return e
}

// canonicalBytes serializes ten reduced limbs as the unique little-endian
// representative in [0, p). It first computes q = floor(h/p) (which is 0 or 1
// for limbs within bounds, but the chain below handles the general reduced
// form), folds 19*q into the low limb, propagates carries once more, and
// packs the resulting 255-bit value.
func canonicalBytes(h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) [32]byte {
	q := (19*h9 + 1<<24) >> 25
	q = (h0 + q) >> 26
	q = (h1 + q) >> 25
	q = (h2 + q) >> 26
	q = (h3 + q) >> 25
	q = (h4 + q) >> 26
	q = (h5 + q) >> 25
	q = (h6 + q) >> 26
	q = (h7 + q) >> 25
	q = (h8 + q) >> 26
	q = (h9 + q) >> 25

	// h - q*p = h - q*2^255 + 19*q; the 2^255 part falls off the top below.
	h0 += 19 * q

	carry0 := h0 >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry1 := h1 >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry2 := h2 >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry3 := h3 >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry4 := h4 >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry5 := h5 >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry6 := h6 >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry7 := h7 >> 25
	h8 += carry7
	h7 -= carry7 << 25
	carry8 := h8 >> 26
	h9 += carry8
	h8 -= carry8 << 26
	carry9 := h9 >> 25
	h9 -= carry9 << 25
	// carry9 is discarded: it is the 2^255 bit eliminated by the fold above.

	var s [32]byte
	s[0] = byte(h0 >> 0)
	s[1] = byte(h0 >> 8)
	s[2] = byte(h0 >> 16)
	s[3] = byte((h0 >> 24) | (h1 << 2))
	s[4] = byte(h1 >> 6)
	s[5] = byte(h1 >> 14)
	s[6] = byte((h1 >> 22) | (h2 << 3))
	s[7] = byte(h2 >> 5)
	s[8] = byte(h2 >> 13)
	s[9] = byte((h2 >> 21) | (h3 << 5))
	s[10] = byte(h3 >> 3)
	s[11] = byte(h3 >> 11)
	s[12] = byte((h3 >> 19) | (h4 << 6))
	s[13] = byte(h4 >> 2)
	s[14] = byte(h4 >> 10)
	s[15] = byte(h4 >> 18)
	s[16] = byte(h5 >> 0)
	s[17] = byte(h5 >> 8)
	s[18] = byte(h5 >> 16)
	s[19] = byte((h5 >> 24) | (h6 << 1))
	s[20] = byte(h6 >> 7)
	s[21] = byte(h6 >> 15)
	s[22] = byte((h6 >> 23) | (h7 << 3))
	s[23] = byte(h7 >> 5)
	s[24] = byte(h7 >> 13)
	s[25] = byte((h7 >> 21) | (h8 << 4))
	s[26] = byte(h8 >> 4)
	s[27] = byte(h8 >> 12)
	s[28] = byte((h8 >> 20) | (h9 << 6))
	s[29] = byte(h9 >> 2)
	s[30] = byte(h9 >> 10)
	s[31] = byte(h9 >> 18)
	return s
}
