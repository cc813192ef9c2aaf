package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/healthtrack-api/internal/store"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	store *store.Store
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(s *store.Store) BaseRepository {
	return BaseRepository{store: s}
}

func (r *BaseRepository) db() *sqlx.DB {
	return r.store.DB()
}
