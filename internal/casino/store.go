package casino

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mattn/go-sqlite3"
)

// RoundStore is the persistence collaborator. Create must report
// ErrNonceCollision when the (uid, client_seed, nonce) key is taken, and
// Update must fail with ErrVersionConflict instead of overwriting a round
// another writer touched first.
type RoundStore interface {
	Create(r *Round) error
	Find(id string) (*Round, error)
	Update(r *Round) error
	LastNonce(uid int, clientSeed string) (int, error)
}

// roundState is the mutable per-game document persisted alongside the fixed
// round columns.
type roundState struct {
	Dice      *DiceRound      `json:"dice,omitempty"`
	Limbo     *LimboRound     `json:"limbo,omitempty"`
	Mines     *MinesRound     `json:"mines,omitempty"`
	Blackjack *BlackjackRound `json:"blackjack,omitempty"`
	Baccarat  *BaccaratRound  `json:"baccarat,omitempty"`
	Plinko    *PlinkoRound    `json:"plinko,omitempty"`
}

type SQLStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(r *Round) error {
	state, err := json.Marshal(roundState{
		Dice: r.Dice, Limbo: r.Limbo, Mines: r.Mines,
		Blackjack: r.Blackjack, Baccarat: r.Baccarat, Plinko: r.Plinko,
	})
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
	INSERT INTO rounds(id,uid,currency,game,server_seed,server_seed_hash,client_seed,nonce,status,bet,payout,credited,version,state,created_at)
	VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, r.ID, r.UID, string(r.Currency), r.Game, r.ServerSeed, r.ServerSeedHash,
		r.ClientSeed, r.Nonce, r.Status, r.Bet, r.Payout, r.Credited, r.Version, string(state), r.CreatedAt)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrNonceCollision
	}
	return err
}

func (s *SQLStore) Find(id string) (*Round, error) {
	row := s.db.QueryRow(`
	SELECT id,uid,currency,game,server_seed,server_seed_hash,client_seed,nonce,status,bet,payout,credited,version,state,created_at
	FROM rounds WHERE id = ?
	`, id)

	var r Round
	var currency, state string
	err := row.Scan(&r.ID, &r.UID, &currency, &r.Game, &r.ServerSeed, &r.ServerSeedHash,
		&r.ClientSeed, &r.Nonce, &r.Status, &r.Bet, &r.Payout, &r.Credited, &r.Version, &state, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.Currency = Currency(currency)

	var st roundState
	if err := json.Unmarshal([]byte(state), &st); err != nil {
		return nil, err
	}
	r.Dice, r.Limbo, r.Mines = st.Dice, st.Limbo, st.Mines
	r.Blackjack, r.Baccarat, r.Plinko = st.Blackjack, st.Baccarat, st.Plinko
	return &r, nil
}

// Update rewrites the mutable columns guarded by the version the caller
// read. Zero rows affected means a concurrent writer won.
func (s *SQLStore) Update(r *Round) error {
	state, err := json.Marshal(roundState{
		Dice: r.Dice, Limbo: r.Limbo, Mines: r.Mines,
		Blackjack: r.Blackjack, Baccarat: r.Baccarat, Plinko: r.Plinko,
	})
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
	UPDATE rounds SET status=?, payout=?, credited=?, state=?, version=version+1
	WHERE id=? AND version=?
	`, r.Status, r.Payout, r.Credited, string(state), r.ID, r.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVersionConflict
	}
	r.Version++
	return nil
}

func (s *SQLStore) LastNonce(uid int, clientSeed string) (int, error) {
	var nonce sql.NullInt64
	err := s.db.QueryRow(`
	SELECT MAX(nonce) FROM rounds WHERE uid=? AND client_seed=?
	`, uid, clientSeed).Scan(&nonce)
	if err != nil {
		return 0, err
	}
	if !nonce.Valid {
		return 0, nil
	}
	return int(nonce.Int64), nil
}
