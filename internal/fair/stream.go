package fair

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// hexChars digits taken from each digest: 13 hex chars = 52 bits, enough for
// an exact float64 mantissa.
const hexChars = 13

const denominator = float64(1 << 52) // 16^13

// Source is anything that yields uniform floats in [0,1). Game resolvers
// consume a Source so tests can substitute fixed values.
type Source interface {
	Next() float64
}

// Stream derives an unbounded sequence of uniform floats in [0,1) from a
// seed triple. Each draw hashes a distinct cursor position, so replaying the
// same triple reproduces the same floats in the same order.
type Stream struct {
	serverSeed string
	clientSeed string
	nonce      int
	cursor     int
}

func NewStream(serverSeed, clientSeed string, nonce int) *Stream {
	return &Stream{serverSeed: serverSeed, clientSeed: clientSeed, nonce: nonce}
}

// Next returns the float at the current cursor and advances it.
func (s *Stream) Next() float64 {
	f := s.At(s.cursor)
	s.cursor++
	return f
}

// At returns the float at an arbitrary cursor without moving the stream.
func (s *Stream) At(cursor int) float64 {
	msg := fmt.Sprintf("%s:%s:%d:%d", s.serverSeed, s.clientSeed, s.nonce, cursor)

	h := hmac.New(sha256.New, []byte(s.serverSeed))
	h.Write([]byte(msg))
	digest := hex.EncodeToString(h.Sum(nil))

	n, _ := strconv.ParseInt(digest[:hexChars], 16, 64)
	return float64(n) / denominator
}

// Cursor reports how many floats have been drawn.
func (s *Stream) Cursor() int {
	return s.cursor
}

// Floats recomputes count floats for a seed triple starting at a cursor.
// Used by the verification path to replay a published round.
func Floats(serverSeed, clientSeed string, nonce, cursor, count int) []float64 {
	s := NewStream(serverSeed, clientSeed, nonce)
	out := make([]float64, count)
	for i := range out {
		out[i] = s.At(cursor + i)
	}
	return out
}
