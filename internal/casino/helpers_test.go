package casino

// seqSource feeds resolvers a fixed float sequence, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Next() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// card builds a shoe index from a rank index (0 = ace .. 12 = king) and
// suit index.
func card(rank, suit int) int {
	return suit*13 + rank
}

const (
	ace   = 0
	two   = 1
	five  = 4
	six   = 5
	seven = 6
	eight = 7
	nine  = 8
	ten   = 9
	queen = 11
	king  = 12
)
