//go:build js && wasm

package main

import (
	"encoding/hex"
	"fmt"
	"syscall/js"

	"filippo.io/edwards25519"

	"github.com/smallyu/go-hash2point/pkg/hash2point"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go hash2point WASM Initialized")

	// Expose Go functions to JS. All arguments and results are hex strings;
	// errors come back as "error: ..." strings for easy checking in JS.
	js.Global().Set("GoHash2Point", map[string]interface{}{
		"HashToPoint": js.FuncOf(HashToPoint),
		"HashToEC":    js.FuncOf(HashToEC),
		"KeyImage":    js.FuncOf(KeyImage),
	})

	<-c
}

// HashToPoint maps a 32-byte digest to a compressed point.
// Arguments:
// 0: digest as 64 hex characters
// Returns:
// compressed point as hex, or an error string
func HashToPoint(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (digestHex)"
	}

	digest, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex: %v", err)
	}

	out, err := hash2point.HashToPoint(digest)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(out[:])
}

// HashToEC hashes arbitrary data and maps it into the prime order subgroup.
// Arguments:
// 0: data as hex (any length)
// Returns:
// compressed point as hex, or an error string
func HashToEC(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (dataHex)"
	}

	data, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex: %v", err)
	}

	p, err := hash2point.HashToEC(data)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(p.Bytes())
}

// KeyImage computes the key image for a secret key and its public key.
// Arguments:
// 0: secret scalar as 64 hex characters (canonical encoding)
// 1: compressed public key as 64 hex characters
// Returns:
// compressed key image as hex, or an error string
func KeyImage(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (secretHex, publicKeyHex)"
	}

	secretBytes, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid secret hex: %v", err)
	}
	secret, err := edwards25519.NewScalar().SetCanonicalBytes(secretBytes)
	if err != nil {
		return fmt.Sprintf("error: invalid secret scalar: %v", err)
	}

	pub, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid public key hex: %v", err)
	}

	ki, err := hash2point.KeyImage(secret, pub)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(ki.Bytes())
}
