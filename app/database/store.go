package database

import "database/sql"

// Store wraps the database handle behind the query methods the fee engine
// consumes. Services depend on the interfaces in app/services, not on this
// type, so tests can swap in in-memory fakes.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}
