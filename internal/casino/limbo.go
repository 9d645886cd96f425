package casino

import (
	"math"

	"bx-casino/internal/fair"
)

const (
	limboMinTarget = 1.01
	limboMaxTarget = 1_000_000.0
	limboEpsilon   = 1e-12
)

type LimboParams struct {
	Target float64 `json:"target"`
}

func (p *LimboParams) validate() error {
	if p == nil {
		return ErrInvalidInput
	}
	if p.Target < limboMinTarget || p.Target > limboMaxTarget {
		return ErrInvalidInput
	}
	return nil
}

type LimboRound struct {
	Target     float64 `json:"target"`
	Multiplier float64 `json:"multiplier"`
	Win        bool    `json:"win"`
}

// resolveLimbo maps a single uniform draw to a heavy-tailed multiplier:
// (1-edge)/u clamped to [1.01, 1e6] and floored to two decimals. Small draws
// produce the rare large multipliers.
func resolveLimbo(r *LimboRound, src fair.Source, bet, houseEdge float64) float64 {
	u := src.Next()
	if u < limboEpsilon {
		u = limboEpsilon
	}

	raw := (1 - houseEdge) / u
	raw = math.Min(math.Max(raw, limboMinTarget), limboMaxTarget)
	r.Multiplier = math.Floor(raw*100) / 100

	r.Win = r.Multiplier >= r.Target
	if !r.Win {
		return 0
	}
	return bet * r.Target
}
