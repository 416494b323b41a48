package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gostellar/keypair"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Keypair is a helper function for tests that derives a deterministic
// keypair from a single seed byte. It panics on failure, which makes it
// usable inline.
func Keypair(seedByte byte) *keypair.KeyPair {
	var seed [32]byte
	for i := range seed {
		seed[i] = seedByte
	}
	kp, err := keypair.FromRawSeed(seed)
	if err != nil {
		panic(fmt.Sprintf("error deriving test keypair: %s", err))
	}
	return kp
}
