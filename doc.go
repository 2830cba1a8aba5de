// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PollHub server.

PollHub is a single-device polling service. An admin creates polls with two to
eight options, optionally restricted to a whitelist of emails. Each device
identity votes once per poll, and results can be exported as CSV or JSON.

# Starting the Server

With no configuration the server stores its data in pollhub.db next to the
binary and listens on 127.0.0.1:3318:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - HOST (-host): Listen address (default: 127.0.0.1)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:pollhub.db)
  - ADMIN_USERNAME, ADMIN_PASSWORD: Admin login (default: admin / admin123)

Values can also come from a .env file (-env).

# Architecture

  - session: Owns polls, whitelist and the current user, writes through to db
  - poll: Poll creation, edit reconciliation, vote casting, validation
  - identity: Device identity, admin login, email verification
  - whitelist: Authorized user list and its CSV/JSON import
  - results: Percentages, winners, CSV/JSON export
  - handlers, router, middleware: JSON HTTP API
  - models: Domain and wire types
  - auth: Identity and id generation, credential comparison
  - db: Key/value table on SQLite or PostgreSQL
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
