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
)

type profileImageRepository struct {
	BaseRepository
}

func NewProfileImageRepository(base BaseRepository) repository.ProfileImageRepository {
	return &profileImageRepository{base}
}

// Upsert replaces the account's avatar wholesale.
func (r *profileImageRepository) Upsert(ctx context.Context, image *model.ProfileImage) (err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionProfileImages, "put", start, err) }()

	query := `
		INSERT INTO profile_images (username, image, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET
			image = EXCLUDED.image,
			updated_at = EXCLUDED.updated_at
	`

	image.UpdatedAt = time.Now()

	if _, err := r.db().ExecContext(ctx, query,
		image.Username,
		image.Image,
		image.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save profile image: %w", err)
	}

	return nil
}

func (r *profileImageRepository) Get(ctx context.Context, username string) (image *model.ProfileImage, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionProfileImages, "get", start, err) }()

	query := `SELECT * FROM profile_images WHERE username = $1`

	var img model.ProfileImage
	if err := r.db().GetContext(ctx, &img, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile image: %w", err)
	}

	return &img, nil
}
