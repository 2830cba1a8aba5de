// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists application state as JSON documents in a key/value table.

# Connecting

Open supports the pure-Go SQLite driver (default, a file on the device) and
PostgreSQL:

	conn, err := db.Open(db.TypeSQLite, "file:pollhub.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

# Schema Creation

CreateSchema creates the single kv_store table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Stores

Store is the read/write collaborator injected into the session:

  - KVStore: kv_store table on *sql.DB, upserts with ON CONFLICT
  - MemoryStore: in-process map, used by tests

Missing keys return ErrNotFound. GetJSON and SetJSON wrap a Store with
JSON decoding and encoding.

# Keys

	polls         []Poll
	userWhitelist []WhitelistUser
	currentUser   User
	pollUserId    bare identity string
*/
package db
