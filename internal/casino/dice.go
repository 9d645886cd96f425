package casino

import (
	"math"

	"bx-casino/internal/fair"
)

const (
	ModeOver  = "over"
	ModeUnder = "under"
)

type DiceParams struct {
	Mode   string  `json:"mode"`
	Chance float64 `json:"chance"`
}

func (p *DiceParams) validate() error {
	if p == nil {
		return ErrInvalidInput
	}
	if p.Mode != ModeOver && p.Mode != ModeUnder {
		return ErrInvalidInput
	}
	if p.Chance <= 0 || p.Chance >= 100 {
		return ErrInvalidInput
	}
	return nil
}

type DiceRound struct {
	Mode   string  `json:"mode"`
	Chance float64 `json:"chance"`
	Roll   float64 `json:"roll"`
	Win    bool    `json:"win"`
}

// resolveDice draws a single float at cursor 0 and scales it to [0,100).
// Payout multiplier on a win is the fair inverse 100/chance discounted by
// the house edge.
func resolveDice(r *DiceRound, src fair.Source, bet, houseEdge float64) float64 {
	r.Roll = math.Floor(src.Next()*100*100) / 100

	switch r.Mode {
	case ModeOver:
		r.Win = r.Roll > r.Chance
	case ModeUnder:
		r.Win = r.Roll < r.Chance
	}

	if !r.Win {
		return 0
	}
	return bet * (100 / r.Chance) * (1 - houseEdge)
}
