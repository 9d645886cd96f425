package casino

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bx-casino/internal/event"
	"bx-casino/internal/fair"
	"bx-casino/internal/logger"
	"bx-casino/internal/monitoring"
)

// Wallet is the ledger collaborator. TryDebit is a conditional
// compare-and-update: it reports false, without mutating anything, when the
// balance cannot cover the amount.
type Wallet interface {
	TryDebit(uid int, currency string, amount float64) (bool, error)
	Credit(uid int, currency string, amount float64) error
}

const nonceAttempts = 3

type Options struct {
	HouseEdge float64
	MaxBet    float64
}

type Service struct {
	store  RoundStore
	wallet Wallet
	bus    *event.Bus
	rtp    *RTPTracker
	risk   *RiskEngine
	opts   Options
}

func NewService(store RoundStore, wallet Wallet, bus *event.Bus, opts Options) *Service {
	if opts.HouseEdge <= 0 {
		opts.HouseEdge = 0.01
	}
	risk := NewRisk()
	if opts.MaxBet > 0 {
		risk.MaxBet = opts.MaxBet
	}
	return &Service{
		store:  store,
		wallet: wallet,
		bus:    bus,
		rtp:    NewRTPTracker(),
		risk:   risk,
		opts:   opts,
	}
}

func (s *Service) validate(req *PlaceBetRequest) error {
	stake := req.Bet
	switch req.Game {
	case GameDice:
		if err := req.Dice.validate(); err != nil {
			return err
		}
	case GameLimbo:
		if err := req.Limbo.validate(); err != nil {
			return err
		}
	case GameMines:
		if err := req.Mines.validate(); err != nil {
			return err
		}
	case GameBlackjack:
		// no extra parameters beyond the stake
	case GameBaccarat:
		if err := req.Baccarat.validate(); err != nil {
			return err
		}
		stake = req.Baccarat.Player + req.Baccarat.Banker + req.Baccarat.Tie
	case GamePlinko:
		if err := req.Plinko.validate(); err != nil {
			return err
		}
	default:
		return ErrInvalidInput
	}

	return s.risk.Validate(stake)
}

// PlaceBet validates, reserves the stake, assigns the next nonce for the
// (uid, clientSeed) pair and persists the round in its initial status. The
// caller gets the commitment hash; the server seed stays hidden until the
// round is terminal. Nonce collisions from concurrent placements are
// retried up to nonceAttempts times; if every attempt fails the reservation
// is released again.
func (s *Service) PlaceBet(req PlaceBetRequest) (*PlaceBetResult, error) {
	if req.UID <= 0 {
		return nil, ErrUnauthorized
	}
	currency, err := ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	clientSeed := req.ClientSeed
	if clientSeed == "" {
		clientSeed = fair.NewClientSeed()
	}

	stake := req.Bet
	if req.Game == GameBaccarat {
		stake = req.Baccarat.Player + req.Baccarat.Banker + req.Baccarat.Tie
	}

	ok, err := s.wallet.TryDebit(req.UID, string(currency), stake)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if !ok {
		return nil, ErrInsufficientFunds
	}

	var round *Round
	err = retry(nonceAttempts, ErrNonceCollision, func() error {
		last, err := s.store.LastNonce(req.UID, clientSeed)
		if err != nil {
			return err
		}

		serverSeed := fair.NewServerSeed()
		r := &Round{
			ID:             uuid.New().String(),
			UID:            req.UID,
			Currency:       currency,
			Game:           req.Game,
			ServerSeed:     serverSeed,
			ServerSeedHash: fair.HashSeed(serverSeed),
			ClientSeed:     clientSeed,
			Nonce:          last + 1,
			Status:         StatusOpen,
			Bet:            req.Bet,
			CreatedAt:      time.Now().Unix(),
		}
		s.initRound(r, &req)

		if err := s.store.Create(r); err != nil {
			if errors.Is(err, ErrNonceCollision) {
				monitoring.NonceRetries.Inc()
			}
			return err
		}
		round = r
		return nil
	})
	if err != nil {
		// release the reservation; nothing else was persisted
		if cerr := s.wallet.Credit(req.UID, string(currency), stake); cerr != nil {
			logger.Log.Error("refund after failed placement",
				zap.Int("uid", req.UID), zap.Error(cerr))
		}
		return nil, errors.Join(ErrInternal, err)
	}

	monitoring.BetsPlaced.WithLabelValues(round.Game).Inc()

	return &PlaceBetResult{
		RoundID:        round.ID,
		ClientSeed:     round.ClientSeed,
		Nonce:          round.Nonce,
		ServerSeedHash: round.ServerSeedHash,
	}, nil
}

// initRound attaches the per-game state. Mines draws its layout and
// blackjack deals its opening hands here; both are pure functions of the
// committed seeds, and neither hidden part leaves the store until the round
// ends.
func (s *Service) initRound(r *Round, req *PlaceBetRequest) {
	switch req.Game {
	case GameDice:
		r.Dice = &DiceRound{Mode: req.Dice.Mode, Chance: req.Dice.Chance}
	case GameLimbo:
		r.Limbo = &LimboRound{Target: req.Limbo.Target}
	case GameMines:
		r.Mines = newMinesRound(req.Mines.Mines, s.stream(r))
	case GameBlackjack:
		r.Blackjack = dealBlackjack(s.stream(r), r.Bet)
		r.Status = StatusPlaying
	case GameBaccarat:
		r.Baccarat = &BaccaratRound{
			Player: req.Baccarat.Player,
			Banker: req.Baccarat.Banker,
			Tie:    req.Baccarat.Tie,
		}
	case GamePlinko:
		r.Plinko = &PlinkoRound{Rows: req.Plinko.Rows, Risk: req.Plinko.Risk}
	}
}

func (s *Service) stream(r *Round) *fair.Stream {
	return fair.NewStream(r.ServerSeed, r.ClientSeed, r.Nonce)
}

// Act applies one caller action to a round and returns the updated view.
// Single-shot games accept only "resolve".
func (s *Service) Act(uid int, roundID string, act Action) (*RoundView, error) {
	r, err := s.load(uid, roundID)
	if err != nil {
		return nil, err
	}
	if terminal(r.Status) {
		return nil, ErrAlreadySettled
	}

	switch r.Game {
	case GameBlackjack:
		err = s.actBlackjack(r, act)
	case GameMines:
		err = s.actMines(r, act)
	default:
		if act.Name != ActResolve {
			return nil, ErrInvalidInput
		}
		err = s.resolveSingleShot(r)
	}
	if err != nil {
		return nil, err
	}
	return s.viewOf(r), nil
}

// Resolve settles a single-shot round (dice, limbo, baccarat, plinko) or
// cashes out mines. Blackjack resolves through its actions.
func (s *Service) Resolve(uid int, roundID string) (*RoundView, error) {
	r, err := s.load(uid, roundID)
	if err != nil {
		return nil, err
	}
	if terminal(r.Status) {
		return s.viewOf(r), nil
	}

	switch r.Game {
	case GameMines:
		err = s.actMines(r, Action{Name: ActCashout})
	case GameBlackjack:
		return nil, ErrRoundNotSettled
	default:
		err = s.resolveSingleShot(r)
	}
	if err != nil {
		return nil, err
	}
	return s.viewOf(r), nil
}

// Settle is idempotent: once a round is terminal it returns the recorded
// payout without touching the wallet again.
func (s *Service) Settle(uid int, roundID string) (float64, error) {
	r, err := s.load(uid, roundID)
	if err != nil {
		return 0, err
	}
	if terminal(r.Status) {
		return r.Payout, nil
	}

	switch r.Game {
	case GameMines, GameBlackjack:
		return 0, ErrRoundNotSettled
	}
	if err := s.resolveSingleShot(r); err != nil {
		return 0, err
	}
	return r.Payout, nil
}

// View returns the caller-facing projection of a round.
func (s *Service) View(uid int, roundID string) (*RoundView, error) {
	r, err := s.load(uid, roundID)
	if err != nil {
		return nil, err
	}
	return s.viewOf(r), nil
}

func (s *Service) load(uid int, roundID string) (*Round, error) {
	if uid <= 0 {
		return nil, ErrUnauthorized
	}
	r, err := s.store.Find(roundID)
	if err != nil {
		return nil, err
	}
	if r.UID != uid {
		return nil, ErrForbidden
	}
	return r, nil
}

func (s *Service) resolveSingleShot(r *Round) error {
	src := s.stream(r)
	var payout float64

	switch r.Game {
	case GameDice:
		payout = resolveDice(r.Dice, src, r.Bet, s.opts.HouseEdge)
	case GameLimbo:
		payout = resolveLimbo(r.Limbo, src, r.Bet, s.opts.HouseEdge)
	case GameBaccarat:
		payout = resolveBaccarat(r.Baccarat, src)
	case GamePlinko:
		payout = resolvePlinko(r.Plinko, src, r.Bet)
	default:
		return ErrInvalidInput
	}

	return s.settle(r, StatusSettled, payout)
}

func (s *Service) actMines(r *Round, act Action) error {
	m := r.Mines
	switch act.Name {
	case ActReveal:
		hit, already, err := m.reveal(act.Index)
		if err != nil {
			return err
		}
		if already {
			return nil
		}
		if hit {
			return s.settle(r, StatusBust, 0)
		}
		if m.cleared() {
			payout := r.Bet * fairMultiplier(m.Mines, m.SafeRevealed(), s.opts.HouseEdge)
			return s.settle(r, StatusCashed, payout)
		}
		return s.store.Update(r)
	case ActCashout:
		if m.SafeRevealed() == 0 {
			return ErrInvalidInput
		}
		payout := r.Bet * fairMultiplier(m.Mines, m.SafeRevealed(), s.opts.HouseEdge)
		return s.settle(r, StatusCashed, payout)
	default:
		return ErrInvalidInput
	}
}

func (s *Service) actBlackjack(r *Round, act Action) error {
	b := r.Blackjack
	if b == nil || r.Status != StatusPlaying {
		return ErrInvalidInput
	}

	var extra float64
	switch act.Name {
	case ActHit:
		b.hit()
	case ActStand:
		b.stand()
	case ActDouble:
		if !b.canDouble() {
			return ErrInvalidInput
		}
		extra = b.active().Bet
		if err := s.reserveExtra(r, extra); err != nil {
			return err
		}
		b.double()
	case ActSplit:
		if !b.canSplit() {
			return ErrInvalidInput
		}
		extra = b.Hands[0].Bet
		if err := s.reserveExtra(r, extra); err != nil {
			return err
		}
		b.split()
	case ActInsurance:
		if !b.InsuranceOffered {
			return ErrInvalidInput
		}
		stake := b.Hands[0].Bet / 2
		if act.Take {
			extra = stake
			if err := s.reserveExtra(r, stake); err != nil {
				return err
			}
		}
		b.insurance(act.Take, stake)
	default:
		return ErrInvalidInput
	}

	prev := r.Version
	var err error
	if b.Done {
		err = s.settle(r, StatusSettled, b.TotalPayout)
	} else {
		err = s.store.Update(r)
	}
	// the store bumps the version only when the write lands; a rejected
	// action must hand the extra stake back
	if err != nil && extra > 0 && r.Version == prev {
		if cerr := s.wallet.Credit(r.UID, string(r.Currency), extra); cerr != nil {
			logger.Log.Error("refund after failed action",
				zap.String("round", r.ID), zap.Int("uid", r.UID), zap.Error(cerr))
		}
	}
	return err
}

func (s *Service) reserveExtra(r *Round, amount float64) error {
	ok, err := s.wallet.TryDebit(r.UID, string(r.Currency), amount)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !ok {
		return ErrInsufficientFunds
	}
	return nil
}

// settle moves the round to a terminal status and credits the payout
// exactly once. The credited flag is persisted through the store CAS before
// the wallet credit, so a duplicated call can never pay twice.
func (s *Service) settle(r *Round, status string, payout float64) error {
	r.Status = status
	r.Payout = payout
	credit := payout > 0 && !r.Credited
	if credit {
		r.Credited = true
	}

	if err := s.store.Update(r); err != nil {
		return err
	}

	if credit {
		if err := s.wallet.Credit(r.UID, string(r.Currency), payout); err != nil {
			logger.Log.Error("payout credit failed",
				zap.String("round", r.ID), zap.Int("uid", r.UID), zap.Error(err))
			return errors.Join(ErrInternal, err)
		}
	}

	stake := r.TotalStake()
	if r.Game == GameBlackjack && r.Blackjack != nil {
		stake = r.Blackjack.InsuranceBet
		for _, h := range r.Blackjack.Hands {
			stake += h.Bet
		}
	}
	s.rtp.Record(stake, payout)
	monitoring.Payouts.WithLabelValues(r.Game).Add(payout)

	s.bus.Publish(event.EventRoundSettled, &SettledEvent{
		RoundID:  r.ID,
		UID:      r.UID,
		Game:     r.Game,
		Currency: r.Currency,
		Stake:    stake,
		Payout:   payout,
	})
	return nil
}

func (s *Service) viewOf(r *Round) *RoundView {
	v := &RoundView{
		RoundID:        r.ID,
		Game:           r.Game,
		Currency:       r.Currency,
		Status:         r.Status,
		Bet:            r.Bet,
		Payout:         r.Payout,
		Nonce:          r.Nonce,
		ClientSeed:     r.ClientSeed,
		ServerSeedHash: r.ServerSeedHash,
	}
	done := terminal(r.Status)
	if done {
		v.ServerSeed = r.ServerSeed
	}

	switch r.Game {
	case GameDice:
		if done {
			v.Result = r.Dice
		}
	case GameLimbo:
		if done {
			v.Result = r.Limbo
		}
	case GameMines:
		v.Result = r.Mines.view(done)
	case GameBlackjack:
		if r.Blackjack != nil {
			v.Result = r.Blackjack.view()
		}
	case GameBaccarat:
		if done {
			v.Result = r.Baccarat.view()
		}
	case GamePlinko:
		if done {
			v.Result = r.Plinko
		}
	}
	return v
}

// retry runs fn up to attempts times, repeating only while it fails with
// the transient sentinel.
func retry(attempts int, transient error, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !errors.Is(err, transient) {
			return err
		}
	}
	return err
}
