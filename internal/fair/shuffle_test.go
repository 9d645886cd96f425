package fair

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Next() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestPermIsPermutation(t *testing.T) {
	p := Perm(52, NewStream("server", "client", 1))
	require.Len(t, p, 52)

	seen := make(map[int]bool)
	for _, v := range p {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 52)
		require.False(t, seen[v])
		seen[v] = true
	}
}

func TestPermDeterminism(t *testing.T) {
	a := Perm(312, NewStream("s", "c", 9))
	b := Perm(312, NewStream("s", "c", 9))
	require.Equal(t, a, b)

	c := Perm(312, NewStream("s", "c", 10))
	require.NotEqual(t, a, c)
}

func TestShuffleSwapRule(t *testing.T) {
	// u = 0 always picks j = 0, so every step swaps the current tail with
	// the head: [0 1 2 3] -> [3 1 2 0] -> [2 1 3 0] -> [1 2 3 0]
	items := []int{0, 1, 2, 3}
	Shuffle(items, &seqSource{vals: []float64{0}})
	require.Equal(t, []int{1, 2, 3, 0}, items)
}
