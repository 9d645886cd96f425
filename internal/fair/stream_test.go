package fair

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamDeterminism(t *testing.T) {
	a := NewStream("server", "client", 1)
	b := NewStream("server", "client", 1)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestStreamBounds(t *testing.T) {
	s := NewStream(NewServerSeed(), NewClientSeed(), 7)

	for i := 0; i < 1000; i++ {
		u := s.Next()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestStreamCursorAdvances(t *testing.T) {
	s := NewStream("server", "client", 1)
	require.Equal(t, 0, s.Cursor())

	first := s.Next()
	second := s.Next()
	require.Equal(t, 2, s.Cursor())
	require.NotEqual(t, first, second)

	// At does not move the cursor and replays any position
	require.Equal(t, first, s.At(0))
	require.Equal(t, second, s.At(1))
	require.Equal(t, 2, s.Cursor())
}

func TestStreamDistinctInputs(t *testing.T) {
	base := NewStream("server", "client", 1).Next()

	require.NotEqual(t, base, NewStream("server2", "client", 1).Next())
	require.NotEqual(t, base, NewStream("server", "client2", 1).Next())
	require.NotEqual(t, base, NewStream("server", "client", 2).Next())
}

func TestFloatsReplay(t *testing.T) {
	s := NewStream("server", "client", 3)
	want := []float64{s.Next(), s.Next(), s.Next(), s.Next()}

	got := Floats("server", "client", 3, 0, 4)
	require.Equal(t, want, got)

	tail := Floats("server", "client", 3, 2, 2)
	require.Equal(t, want[2:], tail)
}

func TestSeedCommitment(t *testing.T) {
	seed := NewServerSeed()
	require.Len(t, seed, 64) // 32 bytes hex

	hash := HashSeed(seed)
	require.Len(t, hash, 64)
	require.True(t, VerifyCommitment(seed, hash))
	require.False(t, VerifyCommitment(seed+"x", hash))
}

func TestProofReplay(t *testing.T) {
	seed := NewServerSeed()
	p := Proof{
		ServerSeed:     seed,
		ServerSeedHash: HashSeed(seed),
		ClientSeed:     "lucky",
		Nonce:          5,
	}

	floats, ok := p.Replay(3)
	require.True(t, ok)
	require.Equal(t, Floats(seed, "lucky", 5, 0, 3), floats)

	p.ServerSeedHash = HashSeed("other")
	_, ok = p.Replay(3)
	require.False(t, ok)
}
