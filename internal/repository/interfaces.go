package repository

import (
	"context"

	"github.com/jwalitptl/healthtrack-api/internal/model"
)

// All repository interfaces in one file.
//
// Point lookups return (nil, nil) when no record exists; callers that
// treat absence as an error wrap it themselves. Upserts replace the
// record holding the same key.
type (
	// AccountRepository handles account operations
	AccountRepository interface {
		Create(ctx context.Context, account *model.Account) error
		Get(ctx context.Context, username string) (*model.Account, error)
	}

	// HealthProfileRepository handles health profile operations
	HealthProfileRepository interface {
		Upsert(ctx context.Context, profile *model.HealthProfile) error
		Get(ctx context.Context, username string) (*model.HealthProfile, error)
	}

	// BMIRecordRepository handles daily BMI observations
	BMIRecordRepository interface {
		Upsert(ctx context.Context, record *model.BMIRecord) error
		Get(ctx context.Context, username, date string) (*model.BMIRecord, error)
		ListByUser(ctx context.Context, username string) ([]*model.BMIRecord, error)
	}

	// TrackingRecordRepository handles body-measurement logs
	TrackingRecordRepository interface {
		Upsert(ctx context.Context, record *model.TrackingRecord) error
		Get(ctx context.Context, username, date string) (*model.TrackingRecord, error)
		ListByUser(ctx context.Context, username string) ([]*model.TrackingRecord, error)
	}

	// ProfileImageRepository handles avatar storage
	ProfileImageRepository interface {
		Upsert(ctx context.Context, image *model.ProfileImage) error
		Get(ctx context.Context, username string) (*model.ProfileImage, error)
	}
)
