package casino

// Currency is the tagged set of wallets a round can stake. Validation happens
// once at the edge; everything below dispatches on the variant.
type Currency string

const (
	BTC  Currency = "BTC"
	SOL  Currency = "SOL"
	USDT Currency = "USDT"
)

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case BTC, SOL, USDT:
		return Currency(s), nil
	default:
		return "", ErrInvalidInput
	}
}

const (
	GameDice      = "dice"
	GameLimbo     = "limbo"
	GameMines     = "mines"
	GameBlackjack = "blackjack"
	GameBaccarat  = "baccarat"
	GamePlinko    = "plinko"
)

// Round statuses. A round is created "open", may pass through "playing"
// (blackjack) or accumulate reveals (mines), and ends in exactly one of the
// terminal states.
const (
	StatusOpen    = "open"
	StatusPlaying = "playing"
	StatusSettled = "settled"
	StatusBust    = "bust"
	StatusCashed  = "cashed"
)

func terminal(status string) bool {
	return status == StatusSettled || status == StatusBust || status == StatusCashed
}

// Round is one wager instance. Mutable game state lives in exactly one of
// the per-game pointers, matching Game. Version backs the store's
// compare-and-swap: every update must carry the version it read.
type Round struct {
	ID             string   `json:"id"`
	UID            int      `json:"uid"`
	Currency       Currency `json:"currency"`
	Game           string   `json:"game"`
	ServerSeed     string   `json:"-"`
	ServerSeedHash string   `json:"server_seed_hash"`
	ClientSeed     string   `json:"client_seed"`
	Nonce          int      `json:"nonce"`
	Status         string   `json:"status"`
	Bet            float64  `json:"bet"`
	Payout         float64  `json:"payout"`
	Credited       bool     `json:"-"`
	Version        int      `json:"-"`
	CreatedAt      int64    `json:"created_at"`

	Dice      *DiceRound      `json:"dice,omitempty"`
	Limbo     *LimboRound     `json:"limbo,omitempty"`
	Mines     *MinesRound     `json:"mines,omitempty"`
	Blackjack *BlackjackRound `json:"blackjack,omitempty"`
	Baccarat  *BaccaratRound  `json:"baccarat,omitempty"`
	Plinko    *PlinkoRound    `json:"plinko,omitempty"`
}

// TotalStake is the amount reserved from the wallet when the round is placed.
func (r *Round) TotalStake() float64 {
	if r.Game == GameBaccarat && r.Baccarat != nil {
		return r.Baccarat.Player + r.Baccarat.Banker + r.Baccarat.Tie
	}
	return r.Bet
}

// PlaceBetRequest carries one bet for any game. Exactly one of the per-game
// parameter blocks must be set, matching Game.
type PlaceBetRequest struct {
	UID        int
	Currency   string
	Game       string
	Bet        float64
	ClientSeed string

	Dice     *DiceParams
	Limbo    *LimboParams
	Mines    *MinesParams
	Baccarat *BaccaratParams
	Plinko   *PlinkoParams
}

// PlaceBetResult is everything the caller learns at placement time: the
// commitment, never the server seed.
type PlaceBetResult struct {
	RoundID        string `json:"round_id"`
	ClientSeed     string `json:"client_seed"`
	Nonce          int    `json:"nonce"`
	ServerSeedHash string `json:"server_seed_hash"`
}

// Action is a caller move on an in-progress round.
type Action struct {
	Name  string `json:"action"`
	Index int    `json:"index"` // mines reveal cell
	Take  bool   `json:"take"`  // blackjack insurance decision
}

const (
	ActHit       = "hit"
	ActStand     = "stand"
	ActDouble    = "double"
	ActSplit     = "split"
	ActInsurance = "insurance"
	ActReveal    = "reveal"
	ActCashout   = "cashout"
	ActResolve   = "resolve"
)

// RoundView is the caller-facing projection of a round. The server seed is
// present only once the round is terminal.
type RoundView struct {
	RoundID        string   `json:"round_id"`
	Game           string   `json:"game"`
	Currency       Currency `json:"currency"`
	Status         string   `json:"status"`
	Bet            float64  `json:"bet"`
	Payout         float64  `json:"payout"`
	Nonce          int      `json:"nonce"`
	ClientSeed     string   `json:"client_seed"`
	ServerSeedHash string   `json:"server_seed_hash"`
	ServerSeed     string   `json:"server_seed,omitempty"`

	Result any `json:"result,omitempty"`
}

// SettledEvent crosses the event bus when a round reaches a terminal state.
type SettledEvent struct {
	RoundID  string   `json:"round_id"`
	UID      int      `json:"uid"`
	Game     string   `json:"game"`
	Currency Currency `json:"currency"`
	Stake    float64  `json:"stake"`
	Payout   float64  `json:"payout"`
}
