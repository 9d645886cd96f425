package ledger

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service writes one journal row per balance movement, inside the caller's
// transaction, so the journal can never disagree with the wallet table.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Debit(tx *sql.Tx, uid int, currency string, amount float64) error {
	return s.record(tx, uid, currency, amount, 0)
}

func (s *Service) Credit(tx *sql.Tx, uid int, currency string, amount float64) error {
	return s.record(tx, uid, currency, 0, amount)
}

func (s *Service) record(tx *sql.Tx, uid int, currency string, debit, credit float64) error {
	ref := uuid.New().String()
	ts := time.Now().Unix()

	_, err := tx.Exec(`
	INSERT INTO ledger(ref,uid,currency,debit,credit,ts)
	VALUES (?,?,?,?,?,?)
	`, ref, uid, currency, debit, credit, ts)

	return err
}
