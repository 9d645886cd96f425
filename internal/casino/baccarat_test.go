package casino

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bx-casino/internal/fair"
)

func TestBankerThirdCardTable(t *testing.T) {
	// banker draw decision for every (banker total, player third card point)
	// pair, plus the stood-player column (-1)
	cases := map[int]struct {
		draws []int // player third-card points on which the banker draws
	}{
		0: {draws: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		1: {draws: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		2: {draws: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		3: {draws: []int{0, 1, 2, 3, 4, 5, 6, 7, 9}},
		4: {draws: []int{2, 3, 4, 5, 6, 7}},
		5: {draws: []int{4, 5, 6, 7}},
		6: {draws: []int{6, 7}},
		7: {draws: nil},
	}

	for total, tc := range cases {
		want := make(map[int]bool)
		for _, p := range tc.draws {
			want[p] = true
		}
		for p := 0; p <= 9; p++ {
			require.Equal(t, want[p], bankerDraws(total, p),
				"banker=%d playerThird=%d", total, p)
		}
	}

	// player stood: banker draws on 0-5, stands on 6-7
	for total := 0; total <= 7; total++ {
		require.Equal(t, total <= 5, bankerDraws(total, -1), "banker=%d stood", total)
	}
}

func TestBaccaratPoints(t *testing.T) {
	require.Equal(t, 1, baccaratPoints(card(ace, 0)))
	require.Equal(t, 9, baccaratPoints(card(nine, 1)))
	require.Equal(t, 0, baccaratPoints(card(ten, 2)))
	require.Equal(t, 0, baccaratPoints(card(king, 3)))

	require.Equal(t, 5, baccaratTotal([]int{card(seven, 0), card(eight, 0)})) // 15 mod 10
}

func TestBaccaratPayouts(t *testing.T) {
	player := &BaccaratRound{Player: 10, Banker: 5, Tie: 2, Winner: "player"}
	require.Equal(t, 20.0, baccaratPayout(player))

	banker := &BaccaratRound{Player: 10, Banker: 10, Tie: 2, Winner: "banker"}
	require.Equal(t, 10+10*0.95, baccaratPayout(banker)) // 5% commission on profit

	tie := &BaccaratRound{Player: 10, Banker: 5, Tie: 2, Winner: "tie"}
	require.Equal(t, 2*9+10.0+5.0, baccaratPayout(tie)) // 8:1 plus both pushes
}

func TestBaccaratDealInvariants(t *testing.T) {
	for nonce := 1; nonce <= 60; nonce++ {
		r := &BaccaratRound{Player: 1}
		dealBaccarat(r, fair.NewStream("server", "client", nonce))

		require.Equal(t, baccaratTotal(r.PlayerCards), r.PlayerTotal)
		require.Equal(t, baccaratTotal(r.BankerCards), r.BankerTotal)

		p2 := baccaratTotal(r.PlayerCards[:2])
		b2 := baccaratTotal(r.BankerCards[:2])

		if p2 >= 8 || b2 >= 8 {
			require.True(t, r.Natural)
			require.Len(t, r.PlayerCards, 2)
			require.Len(t, r.BankerCards, 2)
			continue
		}

		// player draws exactly when the initial total is 5 or less
		require.Equal(t, p2 <= 5, len(r.PlayerCards) == 3)

		playerThird := -1
		if len(r.PlayerCards) == 3 {
			playerThird = baccaratPoints(r.PlayerCards[2])
		}
		require.Equal(t, bankerDraws(b2, playerThird), len(r.BankerCards) == 3)

		switch {
		case r.PlayerTotal > r.BankerTotal:
			require.Equal(t, "player", r.Winner)
		case r.BankerTotal > r.PlayerTotal:
			require.Equal(t, "banker", r.Winner)
		default:
			require.Equal(t, "tie", r.Winner)
		}
	}
}

func TestBaccaratDeterminism(t *testing.T) {
	a := &BaccaratRound{Player: 10}
	b := &BaccaratRound{Player: 10}
	pa := resolveBaccarat(a, fair.NewStream("s", "c", 4))
	pb := resolveBaccarat(b, fair.NewStream("s", "c", 4))

	require.Equal(t, a, b)
	require.Equal(t, pa, pb)
}

func TestBaccaratParamsValidate(t *testing.T) {
	require.NoError(t, (&BaccaratParams{Player: 1}).validate())
	require.NoError(t, (&BaccaratParams{Player: 1, Banker: 1, Tie: 1}).validate())
	require.Error(t, (&BaccaratParams{}).validate())
	require.Error(t, (&BaccaratParams{Player: -1, Banker: 2}).validate())
}
