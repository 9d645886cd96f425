package casino

import (
	"bx-casino/internal/fair"
)

const blackjackShoeSize = blackjackDecks * cardsPerDeck

// splitTens allows splitting any two ten-valued cards, not only equal ranks.
// House configuration; kept as a package constant until a second table
// profile needs it.
const splitTens = true

type BlackjackHand struct {
	Cards   []int   `json:"cards"`
	Bet     float64 `json:"bet"`
	Stood   bool    `json:"stood"`
	Busted  bool    `json:"busted"`
	Doubled bool    `json:"doubled"`
	Payout  float64 `json:"payout"`
}

func (h *BlackjackHand) value() int {
	v, _ := blackjackValue(h.Cards)
	return v
}

// BlackjackRound is the full machine state: the shuffled shoe, a cursor into
// it, the player's hands, and the dealer's cards. The shoe is fixed at deal
// time; every later draw just advances the cursor, so no further randomness
// is consumed after the deal.
type BlackjackRound struct {
	Shoe   []int `json:"shoe"`
	Cursor int   `json:"cursor"`

	Hands  []BlackjackHand `json:"hands"`
	Active int             `json:"active"`
	Dealer []int           `json:"dealer"`

	SplitDone        bool    `json:"split_done"`
	InsuranceOffered bool    `json:"insurance_offered"`
	InsuranceBet     float64 `json:"insurance_bet"`

	Done            bool    `json:"done"`
	TotalPayout     float64 `json:"total_payout"`
	InsurancePayout float64 `json:"insurance_payout"`
}

func (b *BlackjackRound) draw() int {
	c := b.Shoe[b.Cursor]
	b.Cursor++
	return c
}

func (b *BlackjackRound) active() *BlackjackHand {
	return &b.Hands[b.Active]
}

// dealBlackjack shuffles a six-deck shoe from the stream and deals the
// opening hands in player, dealer, player, dealer order. Insurance is on
// offer only while the dealer shows an ace and no action has been taken.
func dealBlackjack(src fair.Source, bet float64) *BlackjackRound {
	b := &BlackjackRound{
		Shoe:   fair.Perm(blackjackShoeSize, src),
		Active: 0,
	}
	p1 := b.draw()
	d1 := b.draw()
	p2 := b.draw()
	d2 := b.draw()

	b.Hands = []BlackjackHand{{Cards: []int{p1, p2}, Bet: bet}}
	b.Dealer = []int{d1, d2}
	b.InsuranceOffered = cardRank(d1) == 0
	return b
}

// upCard is the dealer card visible before settlement.
func (b *BlackjackRound) upCard() int {
	return b.Dealer[0]
}

// hit draws one card on the active hand. A bust stands the hand
// automatically and play advances.
func (b *BlackjackRound) hit() {
	b.InsuranceOffered = false
	h := b.active()
	h.Cards = append(h.Cards, b.draw())
	if h.value() > 21 {
		h.Busted = true
		h.Stood = true
	}
	b.advance()
}

func (b *BlackjackRound) stand() {
	b.InsuranceOffered = false
	b.active().Stood = true
	b.advance()
}

func (b *BlackjackRound) canDouble() bool {
	h := b.active()
	return len(h.Cards) == 2 && !h.Stood && !h.Doubled
}

// double draws exactly one card on a doubled stake and stands. The extra
// stake is reserved by the caller before this runs.
func (b *BlackjackRound) double() {
	b.InsuranceOffered = false
	h := b.active()
	h.Bet *= 2
	h.Doubled = true
	h.Cards = append(h.Cards, b.draw())
	if h.value() > 21 {
		h.Busted = true
	}
	h.Stood = true
	b.advance()
}

func (b *BlackjackRound) canSplit() bool {
	if b.SplitDone || len(b.Hands) != 1 {
		return false
	}
	c := b.Hands[0].Cards
	if len(c) != 2 {
		return false
	}
	if cardRank(c[0]) == cardRank(c[1]) {
		return true
	}
	if splitTens {
		r0, r1 := cardRank(c[0]), cardRank(c[1])
		return r0 >= 9 && r1 >= 9
	}
	return false
}

// split breaks the pair into two hands and deals one fresh card to each.
// The second hand's stake is reserved by the caller. Re-splitting is not
// supported.
func (b *BlackjackRound) split() {
	b.InsuranceOffered = false
	h := b.Hands[0]
	bet := h.Bet
	b.Hands = []BlackjackHand{
		{Cards: []int{h.Cards[0]}, Bet: bet},
		{Cards: []int{h.Cards[1]}, Bet: bet},
	}
	b.Hands[0].Cards = append(b.Hands[0].Cards, b.draw())
	b.Hands[1].Cards = append(b.Hands[1].Cards, b.draw())
	b.SplitDone = true
	b.Active = 0
}

// insurance records the caller's decision. Taking it costs half the hand's
// bet (reserved by the caller) and pays 2:1 on a dealer blackjack. Either
// way the offer is withdrawn.
func (b *BlackjackRound) insurance(take bool, stake float64) {
	b.InsuranceOffered = false
	if take {
		b.InsuranceBet = stake
	}
}

// advance moves play to the next hand that can still act, or runs the
// dealer and settles when none remain.
func (b *BlackjackRound) advance() {
	for i := range b.Hands {
		if !b.Hands[i].Stood {
			b.Active = i
			return
		}
	}
	b.playDealerAndSettle()
}

// playDealerAndSettle runs the dealer (stand on 17, soft included) and
// scores every hand. The dealer draws nothing if all player hands busted.
func (b *BlackjackRound) playDealerAndSettle() {
	allBusted := true
	for i := range b.Hands {
		if !b.Hands[i].Busted {
			allBusted = false
			break
		}
	}

	if !allBusted {
		for {
			v, _ := blackjackValue(b.Dealer)
			if v >= 17 {
				break
			}
			b.Dealer = append(b.Dealer, b.draw())
		}
	}

	dealerVal, _ := blackjackValue(b.Dealer)
	dealerBJ := isBlackjack(b.Dealer)

	total := 0.0
	for i := range b.Hands {
		h := &b.Hands[i]
		hv := h.value()
		handBJ := !b.SplitDone && isBlackjack(h.Cards)

		switch {
		case h.Busted:
			h.Payout = 0
		case dealerBJ:
			if handBJ {
				h.Payout = h.Bet // push
			}
		case handBJ:
			h.Payout = h.Bet * 2.5 // 3:2
		case dealerVal > 21:
			h.Payout = h.Bet * 2
		case hv > dealerVal:
			h.Payout = h.Bet * 2
		case hv == dealerVal:
			h.Payout = h.Bet // push
		default:
			h.Payout = 0
		}
		total += h.Payout
	}

	if b.InsuranceBet > 0 && dealerBJ {
		b.InsurancePayout = b.InsuranceBet * 3
	}

	b.TotalPayout = total + b.InsurancePayout
	b.Done = true
}

// blackjackView hides the hole card and the rest of the shoe while the
// round is live.
type blackjackView struct {
	Hands            []BlackjackHandView `json:"hands"`
	Active           int                 `json:"active"`
	DealerUp         string              `json:"dealer_up"`
	Dealer           []string            `json:"dealer,omitempty"`
	DealerValue      int                 `json:"dealer_value,omitempty"`
	InsuranceOffered bool                `json:"insurance_offered"`
	TotalPayout      float64             `json:"total_payout,omitempty"`
}

type BlackjackHandView struct {
	Cards  []string `json:"cards"`
	Value  int      `json:"value"`
	Bet    float64  `json:"bet"`
	Stood  bool     `json:"stood"`
	Busted bool     `json:"busted"`
	Payout float64  `json:"payout,omitempty"`
}

func (b *BlackjackRound) view() blackjackView {
	v := blackjackView{
		Active:           b.Active,
		DealerUp:         cardName(b.upCard()),
		InsuranceOffered: b.InsuranceOffered,
	}
	for _, h := range b.Hands {
		hv, _ := blackjackValue(h.Cards)
		v.Hands = append(v.Hands, BlackjackHandView{
			Cards:  cardNames(h.Cards),
			Value:  hv,
			Bet:    h.Bet,
			Stood:  h.Stood,
			Busted: h.Busted,
			Payout: h.Payout,
		})
	}
	if b.Done {
		dv, _ := blackjackValue(b.Dealer)
		v.Dealer = cardNames(b.Dealer)
		v.DealerValue = dv
		v.TotalPayout = b.TotalPayout
	}
	return v
}
