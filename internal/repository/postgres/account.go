package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository"
	"github.com/jwalitptl/healthtrack-api/internal/store"
	apperrors "github.com/jwalitptl/healthtrack-api/pkg/errors"
)

type accountRepository struct {
	BaseRepository
}

func NewAccountRepository(base BaseRepository) repository.AccountRepository {
	return &accountRepository{base}
}

// Create inserts a new account. The username key is immutable, so a
// conflicting insert is rejected rather than upserted; the losing side
// of a concurrent duplicate registration gets the conflict error.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) (err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionAccounts, "put", start, err) }()

	query := `
		INSERT INTO accounts (username, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
	`

	account.CreatedAt = time.Now()

	res, err := r.db().ExecContext(ctx, query,
		account.Username,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	if rows == 0 {
		return apperrors.Conflict("username already exists", nil)
	}

	return nil
}

func (r *accountRepository) Get(ctx context.Context, username string) (account *model.Account, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionAccounts, "get", start, err) }()

	query := `SELECT * FROM accounts WHERE username = $1`

	var a model.Account
	if err := r.db().GetContext(ctx, &a, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}
