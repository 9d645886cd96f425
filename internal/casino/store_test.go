package casino

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"bx-casino/internal/db"
	"bx-casino/internal/fair"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	db.Migrate(conn)
	return conn
}

func testRound(id string, nonce int) *Round {
	seed := fair.NewServerSeed()
	return &Round{
		ID:             id,
		UID:            1,
		Currency:       BTC,
		Game:           GameDice,
		ServerSeed:     seed,
		ServerSeedHash: fair.HashSeed(seed),
		ClientSeed:     "client",
		Nonce:          nonce,
		Status:         StatusOpen,
		Bet:            10,
		Dice:           &DiceRound{Mode: ModeUnder, Chance: 50},
		CreatedAt:      1700000000,
	}
}

func TestStoreCreateFind(t *testing.T) {
	store := NewStore(openTestDB(t))

	r := testRound("r1", 1)
	require.NoError(t, store.Create(r))

	got, err := store.Find("r1")
	require.NoError(t, err)
	require.Equal(t, r.ID, got.ID)
	require.Equal(t, r.ServerSeed, got.ServerSeed)
	require.Equal(t, r.ServerSeedHash, got.ServerSeedHash)
	require.Equal(t, BTC, got.Currency)
	require.Equal(t, StatusOpen, got.Status)
	require.NotNil(t, got.Dice)
	require.Equal(t, 50.0, got.Dice.Chance)
	require.Nil(t, got.Mines)
}

func TestStoreFindMissing(t *testing.T) {
	store := NewStore(openTestDB(t))

	_, err := store.Find("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreNonceUnique(t *testing.T) {
	store := NewStore(openTestDB(t))

	require.NoError(t, store.Create(testRound("r1", 1)))
	err := store.Create(testRound("r2", 1)) // same uid, client seed and nonce
	require.ErrorIs(t, err, ErrNonceCollision)

	// a different nonce goes through
	require.NoError(t, store.Create(testRound("r3", 2)))
}

func TestStoreUpdateCAS(t *testing.T) {
	store := NewStore(openTestDB(t))

	r := testRound("r1", 1)
	require.NoError(t, store.Create(r))

	r.Status = StatusSettled
	r.Payout = 19.8
	r.Credited = true
	r.Dice.Roll = 42.17
	r.Dice.Win = true
	require.NoError(t, store.Update(r))
	require.Equal(t, 1, r.Version)

	got, err := store.Find("r1")
	require.NoError(t, err)
	require.Equal(t, StatusSettled, got.Status)
	require.Equal(t, 19.8, got.Payout)
	require.True(t, got.Credited)
	require.Equal(t, 1, got.Version)
	require.Equal(t, 42.17, got.Dice.Roll)

	// a writer holding the old version loses
	stale := testRound("r1", 1)
	stale.Version = 0
	err = store.Update(stale)
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestStoreLastNonce(t *testing.T) {
	store := NewStore(openTestDB(t))

	last, err := store.LastNonce(1, "client")
	require.NoError(t, err)
	require.Zero(t, last)

	require.NoError(t, store.Create(testRound("r1", 1)))
	require.NoError(t, store.Create(testRound("r2", 2)))
	require.NoError(t, store.Create(testRound("r3", 3)))

	last, err = store.LastNonce(1, "client")
	require.NoError(t, err)
	require.Equal(t, 3, last)

	// nonce sequences are scoped per client seed
	last, err = store.LastNonce(1, "other")
	require.NoError(t, err)
	require.Zero(t, last)
}

func TestStoreGameStateRoundTrip(t *testing.T) {
	store := NewStore(openTestDB(t))

	r := testRound("r1", 1)
	r.Game = GameMines
	r.Dice = nil
	r.Mines = &MinesRound{Mines: 3, Layout: []int{4, 9, 17}, Revealed: []int{0, 1}}
	require.NoError(t, store.Create(r))

	got, err := store.Find("r1")
	require.NoError(t, err)
	require.NotNil(t, got.Mines)
	require.Equal(t, []int{4, 9, 17}, got.Mines.Layout)
	require.Equal(t, []int{0, 1}, got.Mines.Revealed)
	require.Nil(t, got.Dice)
}
