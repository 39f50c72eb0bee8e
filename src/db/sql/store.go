package sql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store holds the connection pool behind the upsert and remote-procedure
// methods. All row identity comes from the upstream systems; this layer
// never generates ids.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}
