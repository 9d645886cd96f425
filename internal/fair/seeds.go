package fair

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewServerSeed returns 32 cryptographically random bytes, hex-encoded.
// A fresh seed is generated per round and revealed only after the round
// reaches a terminal state.
func NewServerSeed() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewClientSeed returns 16 random bytes, hex-encoded. Used when the caller
// does not supply a seed of their own.
func NewClientSeed() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// HashSeed computes the public commitment for a server seed. The commitment
// is handed to the caller before any randomness derived from the seed is
// consumed.
func HashSeed(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
