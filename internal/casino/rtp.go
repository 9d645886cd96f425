package casino

import (
	"sync"

	"bx-casino/internal/monitoring"
)

// RTPTracker observes realized return-to-player. It never feeds back into
// the house edge; the edge stays fixed for the life of a seed commitment.
type RTPTracker struct {
	mu          sync.Mutex
	totalStake  float64
	totalPayout float64
}

func NewRTPTracker() *RTPTracker {
	return &RTPTracker{}
}

func (r *RTPTracker) Record(stake, payout float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalStake += stake
	r.totalPayout += payout
	if r.totalStake > 0 {
		monitoring.RealizedRTP.Set(r.totalPayout / r.totalStake)
	}
}

// Realized returns payout/stake over everything recorded so far, or 0 when
// nothing has been staked.
func (r *RTPTracker) Realized() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.totalStake == 0 {
		return 0
	}
	return r.totalPayout / r.totalStake
}
