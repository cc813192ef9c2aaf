package recommendation

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository"
	bmisvc "github.com/jwalitptl/healthtrack-api/internal/service/bmi"
)

const (
	foodPlanCacheTTL = 5 * time.Minute
	cacheCleanup     = 15 * time.Minute
)

// BMI thresholds above which a user is tagged for stricter food plans
const (
	overweightThreshold = 23
	obeseThreshold      = 30
)

type Service struct {
	profileRepo repository.HealthProfileRepository
	bmiRepo     repository.BMIRecordRepository
	planCache   *cache.Cache
}

func NewService(profileRepo repository.HealthProfileRepository,
	bmiRepo repository.BMIRecordRepository) *Service {
	return &Service{
		profileRepo: profileRepo,
		bmiRepo:     bmiRepo,
		planCache:   cache.New(foodPlanCacheTTL, cacheCleanup),
	}
}

// Exercises returns the catalog, optionally filtered by intensity.
// An empty filter returns everything.
func (s *Service) Exercises(intensities []string) []model.Exercise {
	if len(intensities) == 0 {
		return exerciseCatalog
	}

	wanted := make(map[string]bool, len(intensities))
	for _, i := range intensities {
		wanted[strings.ToLower(i)] = true
	}

	filtered := make([]model.Exercise, 0, len(exerciseCatalog))
	for _, ex := range exerciseCatalog {
		if wanted[ex.Intensity] {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

// FoodPlan picks the weekly meal plan matching the user's condition
// tags: the first plan aimed at a specific tag the user carries wins,
// otherwise the general plan applies. Plans are derived from the latest
// BMI record and the health profile, so results are cached briefly.
func (s *Service) FoodPlan(ctx context.Context, username string) (*model.FoodPlan, error) {
	if cached, ok := s.planCache.Get(username); ok {
		plan := cached.(model.FoodPlan)
		return &plan, nil
	}

	tags, err := s.userTags(ctx, username)
	if err != nil {
		return nil, err
	}

	plan := matchPlan(tags)
	s.planCache.SetDefault(username, *plan)
	return plan, nil
}

// EmergencyContacts returns the static emergency phone list.
func (s *Service) EmergencyContacts() []model.EmergencyContact {
	return emergencyContacts
}

// InvalidatePlan drops the cached plan after profile or BMI updates.
func (s *Service) InvalidatePlan(username string) {
	s.planCache.Delete(username)
}

func (s *Service) userTags(ctx context.Context, username string) (map[string]bool, error) {
	tags := map[string]bool{model.TargetGroupAll: true}

	records, err := s.bmiRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		latest := records[len(records)-1]
		value := bmisvc.Compute(latest.Weight, latest.Height)
		if value >= overweightThreshold {
			tags[model.TargetGroupOverweight] = true
		}
		if value >= obeseThreshold {
			tags[model.TargetGroupObese] = true
		}
	}

	profile, err := s.profileRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile != nil && hasDiabetes(profile.ChronicDiseases) {
		tags[model.TargetGroupDiabetes] = true
	}

	return tags, nil
}

// hasDiabetes checks the free-text chronic disease field in both the
// Thai and English spellings users enter.
func hasDiabetes(chronicDiseases string) bool {
	lowered := strings.ToLower(chronicDiseases)
	return strings.Contains(lowered, "diabetes") || strings.Contains(chronicDiseases, "เบาหวาน")
}

func matchPlan(tags map[string]bool) *model.FoodPlan {
	for i := range foodPlans {
		for _, g := range foodPlans[i].TargetGroups {
			if g != model.TargetGroupAll && tags[g] {
				return &foodPlans[i]
			}
		}
	}
	for i := range foodPlans {
		for _, g := range foodPlans[i].TargetGroups {
			if g == model.TargetGroupAll {
				return &foodPlans[i]
			}
		}
	}
	return &foodPlans[len(foodPlans)-1]
}
