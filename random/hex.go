// Package random generates secrets for cookie signing.
package random

import (
	"crypto/rand"
	"encoding/hex"
)

// Secret returns n random bytes. It panics if the system source fails, since
// nothing can be signed safely without it.
func Secret(n int) []byte {
	secret := make([]byte, n)

	_, err := rand.Read(secret)
	if err != nil {
		panic(err)
	}

	return secret
}

// HexString returns n random bytes hex-encoded, so 2n characters long.
func HexString(n int) string {
	return hex.EncodeToString(Secret(n))
}
