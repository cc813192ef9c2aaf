package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository"
)

type Service struct {
	profileRepo repository.HealthProfileRepository
	imageRepo   repository.ProfileImageRepository
}

func NewService(profileRepo repository.HealthProfileRepository,
	imageRepo repository.ProfileImageRepository) *Service {
	return &Service{
		profileRepo: profileRepo,
		imageRepo:   imageRepo,
	}
}

// GetHealthProfile returns the user's profile. A user who has never
// saved one gets the empty profile with sentinel fields rather than an
// error.
func (s *Service) GetHealthProfile(ctx context.Context, username string) (*model.HealthProfile, error) {
	profile, err := s.profileRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &model.HealthProfile{
			Username:        username,
			ChronicDiseases: model.EmptyFieldSentinel,
			SurgeryHistory:  model.EmptyFieldSentinel,
			DrugAllergies:   model.EmptyFieldSentinel,
			FoodAllergies:   model.EmptyFieldSentinel,
		}, nil
	}
	return profile, nil
}

// SaveHealthProfile fully replaces the user's profile. Blank free-text
// fields are stored as the "-" sentinel.
func (s *Service) SaveHealthProfile(ctx context.Context, username string, req *model.SaveHealthProfileRequest) (*model.HealthProfile, error) {
	profile := &model.HealthProfile{
		Username:        username,
		ChronicDiseases: normalizeField(req.ChronicDiseases),
		SurgeryHistory:  normalizeField(req.SurgeryHistory),
		DrugAllergies:   normalizeField(req.DrugAllergies),
		FoodAllergies:   normalizeField(req.FoodAllergies),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save health profile: %w", err)
	}

	return profile, nil
}

// GetImage returns the user's avatar, or nil if none has been uploaded.
func (s *Service) GetImage(ctx context.Context, username string) (*model.ProfileImage, error) {
	return s.imageRepo.Get(ctx, username)
}

// SaveImage replaces the user's avatar with the uploaded data URI.
func (s *Service) SaveImage(ctx context.Context, username string, req *model.SaveProfileImageRequest) (*model.ProfileImage, error) {
	image := &model.ProfileImage{
		Username: username,
		Image:    req.Image,
	}

	if err := s.imageRepo.Upsert(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to save profile image: %w", err)
	}

	return image, nil
}

func normalizeField(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return model.EmptyFieldSentinel
	}
	return trimmed
}
