package casino

// RiskEngine bounds what a single round may stake. The house edge lives in
// Options; these limits are purely about exposure.
type RiskEngine struct {
	MinBet float64
	MaxBet float64
}

func NewRisk() *RiskEngine {
	return &RiskEngine{
		MinBet: 0,
		MaxBet: 1000,
	}
}

func (r *RiskEngine) Validate(stake float64) error {
	if stake <= 0 || stake < r.MinBet {
		return ErrInvalidInput
	}
	if r.MaxBet > 0 && stake > r.MaxBet {
		return ErrInvalidInput
	}
	return nil
}
