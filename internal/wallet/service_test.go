package wallet

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"bx-casino/internal/db"
	"bx-casino/internal/ledger"
)

func newTestWallet(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	db.Migrate(conn)
	return New(conn, ledger.New(conn)), conn
}

func TestCreditCreatesWallet(t *testing.T) {
	w, _ := newTestWallet(t)

	require.NoError(t, w.Credit(1, "BTC", 50))

	balance, err := w.Balance(1, "BTC")
	require.NoError(t, err)
	require.Equal(t, 50.0, balance)

	// second credit accumulates on the same row
	require.NoError(t, w.Credit(1, "BTC", 25))
	balance, _ = w.Balance(1, "BTC")
	require.Equal(t, 75.0, balance)
}

func TestBalancesAreScopedByCurrency(t *testing.T) {
	w, _ := newTestWallet(t)

	require.NoError(t, w.Credit(1, "BTC", 10))
	require.NoError(t, w.Credit(1, "SOL", 20))
	require.NoError(t, w.Credit(2, "BTC", 30))

	for _, tc := range []struct {
		uid      int
		currency string
		want     float64
	}{
		{1, "BTC", 10},
		{1, "SOL", 20},
		{2, "BTC", 30},
		{2, "SOL", 0},
	} {
		balance, err := w.Balance(tc.uid, tc.currency)
		require.NoError(t, err)
		require.Equal(t, tc.want, balance)
	}
}

func TestTryDebitConditional(t *testing.T) {
	w, _ := newTestWallet(t)
	require.NoError(t, w.Credit(1, "BTC", 100))

	ok, err := w.TryDebit(1, "BTC", 40)
	require.NoError(t, err)
	require.True(t, ok)

	// more than the remainder is refused without touching the balance
	ok, err = w.TryDebit(1, "BTC", 61)
	require.NoError(t, err)
	require.False(t, ok)

	balance, _ := w.Balance(1, "BTC")
	require.Equal(t, 60.0, balance)

	// draining to exactly zero is allowed
	ok, err = w.TryDebit(1, "BTC", 60)
	require.NoError(t, err)
	require.True(t, ok)

	balance, _ = w.Balance(1, "BTC")
	require.Zero(t, balance)
}

func TestTryDebitMissingWallet(t *testing.T) {
	w, _ := newTestWallet(t)

	ok, err := w.TryDebit(7, "USDT", 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNonPositiveAmounts(t *testing.T) {
	w, _ := newTestWallet(t)
	require.NoError(t, w.Credit(1, "BTC", 10))

	ok, err := w.TryDebit(1, "BTC", 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = w.TryDebit(1, "BTC", -5)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, w.Credit(1, "BTC", 0))
	require.NoError(t, w.Credit(1, "BTC", -5))

	balance, _ := w.Balance(1, "BTC")
	require.Equal(t, 10.0, balance)
}

func TestJournalMatchesMovements(t *testing.T) {
	w, conn := newTestWallet(t)

	require.NoError(t, w.Credit(1, "BTC", 100))
	ok, err := w.TryDebit(1, "BTC", 30)
	require.NoError(t, err)
	require.True(t, ok)

	var debits, credits float64
	err = conn.QueryRow(`
	SELECT COALESCE(SUM(debit),0), COALESCE(SUM(credit),0) FROM ledger WHERE uid = 1
	`).Scan(&debits, &credits)
	require.NoError(t, err)
	require.Equal(t, 30.0, debits)
	require.Equal(t, 100.0, credits)

	// a refused debit leaves no journal row behind
	ok, _ = w.TryDebit(1, "BTC", 1000)
	require.False(t, ok)

	var rows int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM ledger`).Scan(&rows))
	require.Equal(t, 2, rows)
}
