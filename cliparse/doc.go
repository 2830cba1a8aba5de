// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - Host: Listen address (default: 127.0.0.1)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default for sqlite: file:pollhub.db)
  - AdminUsername, AdminPassword: Admin login pair (default: admin / admin123)
  - EnvFile: dotenv file read before the environment (default: .env)

# CLI Flags

	-p               Server port
	-host            Listen address
	-d               Database URL
	-t               Database type
	-env             Env file
	-admin-user      Admin username
	-admin-password  Admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	HOST           → -host
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_USERNAME → -admin-user
	ADMIN_PASSWORD → -admin-password

CLI flags take precedence over environment variables. The env file is loaded
with godotenv and never overrides a variable that is already set. A missing env
file is not an error.

# Validation

ParseFlags returns an error when:

  - PORT is not a number or is out of range
  - the database type is not sqlite or postgres
  - postgres is selected without a database URL

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(sess)
*/
package cliparse
