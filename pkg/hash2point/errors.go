package hash2point

import "errors"

// Common errors returned by the hash2point library
var (
	ErrInvalidDigestLength = errors.New("digest must be exactly 32 bytes")
	ErrPointDecode         = errors.New("mapped point failed to decode")
)
