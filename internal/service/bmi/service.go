package bmi

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository"
)

const dateLayout = "2006-01-02"

// CategoryDetail pairs a BMI category with its display color and advice.
type CategoryDetail struct {
	Category string
	Color    string
	Advice   string
}

// Category thresholds follow the Asian-Pacific cutoffs used throughout
// the app: half-open bins at 18.5, 23, 25 and 30.
var categoryDetails = []struct {
	upper  float64
	detail CategoryDetail
}{
	{18.5, CategoryDetail{model.BMICategoryUnderweight, "#3498db",
		"Your weight is below the healthy range. Increase intake of nutritious, calorie-dense food."}},
	{23, CategoryDetail{model.BMICategoryNormal, "#2ecc71",
		"Your weight is in the healthy range. Keep it there with balanced meals and regular exercise."}},
	{25, CategoryDetail{model.BMICategoryOverweight, "#f1c40f",
		"You are starting to gain excess weight. Watch your diet and add more physical activity."}},
	{30, CategoryDetail{model.BMICategoryObese1, "#e67e22",
		"Class 1 obesity raises the risk of diabetes and high blood pressure. Consider a supervised weight-loss plan."}},
	{math.Inf(1), CategoryDetail{model.BMICategoryObese2, "#c0392b",
		"Class 2 obesity carries a high risk of NCDs. Consult a doctor or dietitian about losing weight urgently."}},
}

// Compute returns the body mass index for weight in kg and height in cm.
func Compute(weight, height float64) float64 {
	m := height / 100
	return weight / (m * m)
}

// Categorize maps a BMI value onto the five-bin partition. Total over
// all positive values: no gaps or overlaps at the boundaries.
func Categorize(bmi float64) CategoryDetail {
	for _, c := range categoryDetails {
		if bmi < c.upper {
			return c.detail
		}
	}
	return categoryDetails[len(categoryDetails)-1].detail
}

type Service struct {
	bmiRepo repository.BMIRecordRepository
	now     func() time.Time
}

func NewService(bmiRepo repository.BMIRecordRepository) *Service {
	return &Service{
		bmiRepo: bmiRepo,
		now:     time.Now,
	}
}

// Record stores today's BMI observation for the user. Submitting again
// on the same calendar date replaces the day's record; it never creates
// a second one.
func (s *Service) Record(ctx context.Context, username string, req *model.BMIRequest) (*model.BMIResult, error) {
	date := s.now().Format(dateLayout)

	existing, err := s.bmiRepo.Get(ctx, username, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check today's record: %w", err)
	}

	value := Compute(req.Weight, req.Height)
	record := &model.BMIRecord{
		Username: username,
		Date:     date,
		Height:   req.Height,
		Weight:   req.Weight,
		BMI:      value,
	}

	if err := s.bmiRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	detail := Categorize(value)
	return &model.BMIResult{
		BMI:      math.Round(value*100) / 100,
		Category: detail.Category,
		Color:    detail.Color,
		Advice:   detail.Advice,
		Date:     date,
		Replaced: existing != nil,
	}, nil
}

// Today returns the user's record for the current date, or nil if
// nothing has been logged yet. Drives the once-per-day form notice.
func (s *Service) Today(ctx context.Context, username string) (*model.BMIRecord, error) {
	return s.bmiRepo.Get(ctx, username, s.now().Format(dateLayout))
}

// History returns all of the user's BMI records ordered by date.
func (s *Service) History(ctx context.Context, username string) ([]*model.BMIRecord, error) {
	return s.bmiRepo.ListByUser(ctx, username)
}

// Latest returns the most recent record, or nil if none exist. The
// calculator form pre-fills its height field from it.
func (s *Service) Latest(ctx context.Context, username string) (*model.BMIRecord, error) {
	records, err := s.bmiRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[len(records)-1], nil
}
