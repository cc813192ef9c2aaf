package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository"
	apperrors "github.com/jwalitptl/healthtrack-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type Service struct {
	trackingRepo repository.TrackingRecordRepository
}

func NewService(trackingRepo repository.TrackingRecordRepository) *Service {
	return &Service{trackingRepo: trackingRepo}
}

// Log stores one measurement observation. A submission for a date that
// already has a record replaces it; there is never more than one record
// per (username, date).
func (s *Service) Log(ctx context.Context, username string, req *model.TrackingRequest) (*model.TrackingRecord, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, apperrors.Validation("date must be formatted YYYY-MM-DD", err)
	}
	if req.BloodPressure != nil && !model.BloodPressurePattern.MatchString(*req.BloodPressure) {
		return nil, apperrors.Validation("blood pressure must match systolic/diastolic, e.g. 120/80", nil)
	}

	record := &model.TrackingRecord{
		Username:      username,
		Date:          req.Date,
		Weight:        req.Weight,
		Chest:         req.Chest,
		Waist:         req.Waist,
		BloodPressure: req.BloodPressure,
		Glucose:       req.Glucose,
	}

	if err := s.trackingRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// List returns the user's records sorted by date, optionally narrowed
// to one calendar month. Month filtering happens here: the store hands
// back the full per-user set.
func (s *Service) List(ctx context.Context, username string, filter *model.TrackingFilter) ([]*model.TrackingRecord, error) {
	records, err := s.trackingRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if filter == nil || (filter.Year == 0 && filter.Month == 0) {
		return records, nil
	}

	filtered := make([]*model.TrackingRecord, 0, len(records))
	for _, r := range records {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed date in record %s: %w", r.ID(), err)
		}
		if filter.Year != 0 && d.Year() != filter.Year {
			continue
		}
		if filter.Month != 0 && int(d.Month()) != filter.Month {
			continue
		}
		filtered = append(filtered, r)
	}

	return filtered, nil
}
