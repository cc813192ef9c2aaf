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

type trackingRecordRepository struct {
	BaseRepository
}

func NewTrackingRecordRepository(base BaseRepository) repository.TrackingRecordRepository {
	return &trackingRecordRepository{base}
}

// Upsert writes one measurement log entry. Same key policy as BMI
// records: a second submission for the same (username, date) replaces
// the existing entry and never creates a duplicate.
func (r *trackingRecordRepository) Upsert(ctx context.Context, record *model.TrackingRecord) (err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionTrackingRecords, "put", start, err) }()

	query := `
		INSERT INTO tracking_records (
			username, date, weight, chest, waist, blood_pressure, glucose, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username, date) DO UPDATE SET
			weight = EXCLUDED.weight,
			chest = EXCLUDED.chest,
			waist = EXCLUDED.waist,
			blood_pressure = EXCLUDED.blood_pressure,
			glucose = EXCLUDED.glucose
	`

	record.CreatedAt = time.Now()

	if _, err := r.db().ExecContext(ctx, query,
		record.Username,
		record.Date,
		record.Weight,
		record.Chest,
		record.Waist,
		record.BloodPressure,
		record.Glucose,
		record.CreatedAt,
	); err != nil {
		if store.IsUniqueViolation(err) {
			return apperrors.Conflict("tracking record already exists for this date", err)
		}
		return fmt.Errorf("failed to save tracking record: %w", err)
	}

	return nil
}

func (r *trackingRecordRepository) Get(ctx context.Context, username, date string) (record *model.TrackingRecord, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionTrackingRecords, "get", start, err) }()

	query := `SELECT * FROM tracking_records WHERE username = $1 AND date = $2`

	var rec model.TrackingRecord
	if err := r.db().GetContext(ctx, &rec, query, username, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tracking record: %w", err)
	}

	return &rec, nil
}

func (r *trackingRecordRepository) ListByUser(ctx context.Context, username string) (records []*model.TrackingRecord, err error) {
	start := time.Now()
	defer func() { r.store.Observe(store.CollectionTrackingRecords, "getAll", start, err) }()

	query := `SELECT * FROM tracking_records WHERE username = $1 ORDER BY date`

	records = []*model.TrackingRecord{}
	if err := r.db().SelectContext(ctx, &records, query, username); err != nil {
		return nil, fmt.Errorf("failed to list tracking records: %w", err)
	}

	return records, nil
}
