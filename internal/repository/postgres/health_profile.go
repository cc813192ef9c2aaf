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

type healthProfileRepository struct {
	BaseRepository
}

func NewHealthProfileRepository(base BaseRepository) repository.HealthProfileRepository {
	return &healthProfileRepository{base}
}

// Upsert fully replaces the profile keyed by username. There is no
// partial patch: every save writes all four fields.
func (r *healthProfileRepository) Upsert(ctx context.Context, profile *model.HealthProfile) (err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionHealthProfiles, "put", start, err) }()

	query := `
		INSERT INTO health_profiles (
			username, chronic_diseases, surgery_history, drug_allergies, food_allergies, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE SET
			chronic_diseases = EXCLUDED.chronic_diseases,
			surgery_history = EXCLUDED.surgery_history,
			drug_allergies = EXCLUDED.drug_allergies,
			food_allergies = EXCLUDED.food_allergies,
			updated_at = EXCLUDED.updated_at
	`

	profile.UpdatedAt = time.Now()

	if _, err := r.db().ExecContext(ctx, query,
		profile.Username,
		profile.ChronicDiseases,
		profile.SurgeryHistory,
		profile.DrugAllergies,
		profile.FoodAllergies,
		profile.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save health profile: %w", err)
	}

	return nil
}

func (r *healthProfileRepository) Get(ctx context.Context, username string) (profile *model.HealthProfile, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionHealthProfiles, "get", start, err) }()

	query := `SELECT * FROM health_profiles WHERE username = $1`

	var p model.HealthProfile
	if err := r.db().GetContext(ctx, &p, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get health profile: %w", err)
	}

	return &p, nil
}
