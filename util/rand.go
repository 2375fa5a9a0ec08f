package util

import (
	"crypto/rand"
	"encoding/hex"
)

// RandString returns n random hex characters, for short-lived view tokens.
func RandString(n int) string {
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)[:n]
}
