package casino

// Cards are stored as shoe indices. Index mod 52 identifies the card:
// rank = idx % 13 (0 = ace .. 12 = king), suit = idx / 13 % 4. Storing ints
// keeps the persisted round state compact and the shuffle a plain Perm.

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
var suitNames = []string{"S", "H", "D", "C"}

const (
	blackjackDecks = 6
	baccaratDecks  = 8
	cardsPerDeck   = 52
)

func cardRank(idx int) int { return idx % 13 }

func cardName(idx int) string {
	c := idx % cardsPerDeck
	return rankNames[c%13] + suitNames[c/13]
}

func cardNames(idxs []int) []string {
	out := make([]string, len(idxs))
	for i, c := range idxs {
		out[i] = cardName(c)
	}
	return out
}

// blackjackValue scores a hand: ace counts 11 unless that busts, in which
// case aces drop to 1 one at a time. soft reports whether an ace is still
// counted as 11.
func blackjackValue(cards []int) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		r := cardRank(c)
		switch {
		case r == 0:
			aces++
			total += 11
		case r >= 9:
			total += 10
		default:
			total += r + 1
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// isBlackjack reports a two-card 21.
func isBlackjack(cards []int) bool {
	if len(cards) != 2 {
		return false
	}
	v, _ := blackjackValue(cards)
	return v == 21
}

// baccaratPoints maps a card to its baccarat value: ace 1, 2-9 pip, tens
// and faces 0.
func baccaratPoints(idx int) int {
	r := cardRank(idx)
	switch {
	case r == 0:
		return 1
	case r >= 9:
		return 0
	default:
		return r + 1
	}
}

// baccaratTotal is the hand sum mod 10.
func baccaratTotal(cards []int) int {
	t := 0
	for _, c := range cards {
		t += baccaratPoints(c)
	}
	return t % 10
}
