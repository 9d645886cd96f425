package casino

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimboLossBelowTarget(t *testing.T) {
	r := &LimboRound{Target: 2.0}
	payout := resolveLimbo(r, &seqSource{vals: []float64{0.5}}, 10, 0.01)

	// 0.99 / 0.5 = 1.98
	require.Equal(t, 1.98, r.Multiplier)
	require.False(t, r.Win)
	require.Zero(t, payout)
}

func TestLimboWinPaysTarget(t *testing.T) {
	r := &LimboRound{Target: 2.0}
	payout := resolveLimbo(r, &seqSource{vals: []float64{0.4}}, 10, 0.01)

	// 0.99 / 0.4 = 2.475 -> 2.47
	require.Equal(t, 2.47, r.Multiplier)
	require.True(t, r.Win)
	require.Equal(t, 20.0, payout) // bet * target, not bet * multiplier
}

func TestLimboClampFloor(t *testing.T) {
	r := &LimboRound{Target: 1.01}
	resolveLimbo(r, &seqSource{vals: []float64{0.999999}}, 1, 0.01)
	require.Equal(t, 1.01, r.Multiplier)
}

func TestLimboClampCeiling(t *testing.T) {
	r := &LimboRound{Target: 1.5}
	resolveLimbo(r, &seqSource{vals: []float64{0}}, 1, 0.01)
	require.Equal(t, limboMaxTarget, r.Multiplier)
}

func TestLimboParamsValidate(t *testing.T) {
	require.NoError(t, (&LimboParams{Target: 1.01}).validate())
	require.NoError(t, (&LimboParams{Target: 1_000_000}).validate())
	require.Error(t, (&LimboParams{Target: 1.0}).validate())
	require.Error(t, (&LimboParams{Target: 1_000_001}).validate())
	var nilParams *LimboParams
	require.Error(t, nilParams.validate())
}
