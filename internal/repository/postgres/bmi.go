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

type bmiRecordRepository struct {
	BaseRepository
}

func NewBMIRecordRepository(base BaseRepository) repository.BMIRecordRepository {
	return &bmiRecordRepository{base}
}

// Upsert writes the day's BMI observation. The (username, date) key
// guarantees at most one record per user per calendar date; a repeat
// submission replaces that day's record in place.
func (r *bmiRecordRepository) Upsert(ctx context.Context, record *model.BMIRecord) (err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionBMIRecords, "put", start, err) }()

	query := `
		INSERT INTO bmi_records (username, date, height, weight, bmi, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username, date) DO UPDATE SET
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			bmi = EXCLUDED.bmi
	`

	record.CreatedAt = time.Now()

	if _, err := r.db().ExecContext(ctx, query,
		record.Username,
		record.Date,
		record.Height,
		record.Weight,
		record.BMI,
		record.CreatedAt,
	); err != nil {
		if store.IsUniqueViolation(err) {
			return apperrors.Conflict("bmi record already exists for this date", err)
		}
		return fmt.Errorf("failed to save bmi record: %w", err)
	}

	return nil
}

func (r *bmiRecordRepository) Get(ctx context.Context, username, date string) (record *model.BMIRecord, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionBMIRecords, "get", start, err) }()

	query := `SELECT * FROM bmi_records WHERE username = $1 AND date = $2`

	var rec model.BMIRecord
	if err := r.db().GetContext(ctx, &rec, query, username, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bmi record: %w", err)
	}

	return &rec, nil
}

func (r *bmiRecordRepository) ListByUser(ctx context.Context, username string) (records []*model.BMIRecord, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionBMIRecords, "getAll", start, err) }()

	query := `SELECT * FROM bmi_records WHERE username = $1 ORDER BY date`

	records = []*model.BMIRecord{}
	if err := r.db().SelectContext(ctx, &records, query, username); err != nil {
		return nil, fmt.Errorf("failed to list bmi records: %w", err)
	}

	return records, nil
}
