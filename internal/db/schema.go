package db

import "database/sql"

func Migrate(db *sql.DB) {
	db.Exec(`
	CREATE TABLE IF NOT EXISTS wallets (
		uid INTEGER NOT NULL,
		currency TEXT NOT NULL,
		balance REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (uid, currency)
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS ledger (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT,
		uid INTEGER,
		currency TEXT,
		debit REAL,
		credit REAL,
		ts INTEGER
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		uid INTEGER NOT NULL,
		currency TEXT NOT NULL,
		game TEXT NOT NULL,
		server_seed TEXT NOT NULL,
		server_seed_hash TEXT NOT NULL,
		client_seed TEXT NOT NULL,
		nonce INTEGER NOT NULL,
		status TEXT NOT NULL,
		bet REAL NOT NULL,
		payout REAL NOT NULL DEFAULT 0,
		credited INTEGER NOT NULL DEFAULT 0,
		version INTEGER NOT NULL DEFAULT 0,
		state TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		UNIQUE (uid, client_seed, nonce)
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid INTEGER,
		action TEXT,
		metadata TEXT,
		created_at INTEGER
	);`)
}
