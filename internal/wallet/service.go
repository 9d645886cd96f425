package wallet

import (
	"database/sql"

	"bx-casino/internal/ledger"
	"bx-casino/internal/monitoring"
)

// Service is the wallet ledger. Balances are per (uid, currency) and can
// only move through the conditional debit and the unconditional credit, so
// no engine operation can drive a balance negative.
type Service struct {
	db      *sql.DB
	journal *ledger.Service
}

func New(db *sql.DB, journal *ledger.Service) *Service {
	return &Service{db: db, journal: journal}
}

// TryDebit decrements the balance iff it covers the amount, as a single
// atomic compare-and-update. Zero rows affected means insufficient funds
// and nothing changed.
func (s *Service) TryDebit(uid int, currency string, amount float64) (bool, error) {
	if amount <= 0 {
		return false, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}

	res, err := tx.Exec(`
	UPDATE wallets SET balance = balance - ?
	WHERE uid = ? AND currency = ? AND balance >= ?
	`, amount, uid, currency, amount)
	if err != nil {
		tx.Rollback()
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, err
	}
	if n == 0 {
		tx.Rollback()
		return false, nil
	}

	if err := s.journal.Debit(tx, uid, currency, amount); err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	monitoring.WalletDebits.Inc()
	return true, nil
}

// Credit adds to the balance, creating the wallet row on first use.
func (s *Service) Credit(uid int, currency string, amount float64) error {
	if amount <= 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO wallets(uid, currency, balance) VALUES (?, ?, ?)
	ON CONFLICT(uid, currency) DO UPDATE SET balance = balance + excluded.balance
	`, uid, currency, amount)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := s.journal.Credit(tx, uid, currency, amount); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	monitoring.WalletCredits.Inc()
	return nil
}

func (s *Service) Balance(uid int, currency string) (float64, error) {
	var balance float64
	err := s.db.QueryRow(`
	SELECT balance FROM wallets WHERE uid = ? AND currency = ?
	`, uid, currency).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return balance, err
}
