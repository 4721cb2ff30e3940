package store

import (
	"database/sql"
	"fmt"
)

// OpenTest creates a DB backed by an in-memory database.
// This is only intended for use in tests.
func OpenTest() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Each new connection would see a fresh empty in-memory database.
	db.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &DB{DB: db}, nil
}
