package casino

import (
	"bx-casino/internal/fair"
)

const baccaratShoeSize = baccaratDecks * cardsPerDeck

// bankerCommission is withheld from the profit portion of a winning banker
// bet.
const bankerCommission = 0.05

// BaccaratParams are the three stake buckets. Any combination may be staked
// in one round as long as at least one is positive.
type BaccaratParams struct {
	Player float64 `json:"player"`
	Banker float64 `json:"banker"`
	Tie    float64 `json:"tie"`
}

func (p *BaccaratParams) validate() error {
	if p == nil {
		return ErrInvalidInput
	}
	if p.Player < 0 || p.Banker < 0 || p.Tie < 0 {
		return ErrInvalidInput
	}
	if p.Player+p.Banker+p.Tie <= 0 {
		return ErrInvalidInput
	}
	return nil
}

type BaccaratRound struct {
	Player float64 `json:"player_bet"`
	Banker float64 `json:"banker_bet"`
	Tie    float64 `json:"tie_bet"`

	PlayerCards []int  `json:"player_cards"`
	BankerCards []int  `json:"banker_cards"`
	PlayerTotal int    `json:"player_total"`
	BankerTotal int    `json:"banker_total"`
	Winner      string `json:"winner"` // player, banker, tie
	Natural     bool   `json:"natural"`
}

type baccaratView struct {
	PlayerCards []string `json:"player_cards"`
	BankerCards []string `json:"banker_cards"`
	PlayerTotal int      `json:"player_total"`
	BankerTotal int      `json:"banker_total"`
	Winner      string   `json:"winner"`
	Natural     bool     `json:"natural"`
}

func (r *BaccaratRound) view() baccaratView {
	return baccaratView{
		PlayerCards: cardNames(r.PlayerCards),
		BankerCards: cardNames(r.BankerCards),
		PlayerTotal: r.PlayerTotal,
		BankerTotal: r.BankerTotal,
		Winner:      r.Winner,
		Natural:     r.Natural,
	}
}

// bankerDraws is the fixed third-card table. playerThird is the point value
// of the player's third card, or -1 if the player stood.
func bankerDraws(bankerTotal, playerThird int) bool {
	if playerThird < 0 {
		return bankerTotal <= 5
	}
	switch bankerTotal {
	case 0, 1, 2:
		return true
	case 3:
		return playerThird != 8
	case 4:
		return playerThird >= 2 && playerThird <= 7
	case 5:
		return playerThird >= 4 && playerThird <= 7
	case 6:
		return playerThird == 6 || playerThird == 7
	default:
		return false
	}
}

// resolveBaccarat deals from an eight-deck shoe and applies the standard
// drawing rules, then scores all three stake buckets.
func resolveBaccarat(r *BaccaratRound, src fair.Source) float64 {
	dealBaccarat(r, src)
	return baccaratPayout(r)
}

// dealBaccarat runs the hand: naturals stop it, the player draws on 5 or
// less, the banker follows the third-card table.
func dealBaccarat(r *BaccaratRound, src fair.Source) {
	shoe := fair.Perm(baccaratShoeSize, src)
	cursor := 0
	draw := func() int {
		c := shoe[cursor]
		cursor++
		return c
	}

	r.PlayerCards = []int{draw(), draw()}
	r.BankerCards = []int{draw(), draw()}

	pt := baccaratTotal(r.PlayerCards)
	bt := baccaratTotal(r.BankerCards)

	if pt >= 8 || bt >= 8 {
		r.Natural = true
	} else {
		playerThird := -1
		if pt <= 5 {
			third := draw()
			r.PlayerCards = append(r.PlayerCards, third)
			playerThird = baccaratPoints(third)
		}
		if bankerDraws(bt, playerThird) {
			r.BankerCards = append(r.BankerCards, draw())
		}
	}

	r.PlayerTotal = baccaratTotal(r.PlayerCards)
	r.BankerTotal = baccaratTotal(r.BankerCards)

	switch {
	case r.PlayerTotal > r.BankerTotal:
		r.Winner = "player"
	case r.BankerTotal > r.PlayerTotal:
		r.Winner = "banker"
	default:
		r.Winner = "tie"
	}
}

func baccaratPayout(r *BaccaratRound) float64 {
	payout := 0.0
	switch r.Winner {
	case "player":
		payout = r.Player * 2
	case "banker":
		payout = r.Banker + r.Banker*(1-bankerCommission)
	case "tie":
		// tie pays 8:1 and pushes the player/banker buckets
		payout = r.Tie*9 + r.Player + r.Banker
	}
	return payout
}
