package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/internal/validators"
	"github.com/msavelyeva/nutrikeep/models"
)

type profileService struct {
	settings  store.SettingsRepository
	validator validators.Validator
}

func NewProfileService(storages *store.Storages) ProfileService {
	return &profileService{
		settings:  storages.SettingsRepository,
		validator: validators.NewRecordValidator(),
	}
}

// GetProfile implements ProfileService. No stored profile yields a zero
// profile, mirroring how daily log reads never surface absence.
func (s *profileService) GetProfile(ctx context.Context) (models.UserProfile, error) {
	raw, err := s.settings.Get(ctx, store.SettingUserProfile)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.UserProfile{}, nil
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile setting: %w", err)
	}

	var profile models.UserProfile
	if err = json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode stored profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	if err := s.validator.Validate(ctx, profile); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err = s.settings.Put(ctx, store.SettingUserProfile, string(raw)); err != nil {
		return fmt.Errorf("save profile setting: %w", err)
	}
	return nil
}

func (s *profileService) GetTheme(ctx context.Context) (string, error) {
	return s.getSetting(ctx, store.SettingTheme)
}

func (s *profileService) SetTheme(ctx context.Context, theme string) error {
	return s.putSetting(ctx, store.SettingTheme, theme)
}

func (s *profileService) GetLanguage(ctx context.Context) (string, error) {
	return s.getSetting(ctx, store.SettingLanguage)
}

func (s *profileService) SetLanguage(ctx context.Context, language string) error {
	return s.putSetting(ctx, store.SettingLanguage, language)
}

// SuggestedCalories implements ProfileService using the Mifflin-St Jeor
// resting energy equation. Height in cm, weight in kg.
func (s *profileService) SuggestedCalories(profile models.UserProfile) float64 {
	if profile.Height <= 0 || profile.Weight <= 0 {
		return 0
	}

	bmr := 10*profile.Weight + 6.25*profile.Height - 5*float64(profile.Age)
	if profile.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	if bmr < 0 {
		return 0
	}
	return bmr
}

func (s *profileService) getSetting(ctx context.Context, key string) (string, error) {
	value, err := s.settings.Get(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s setting: %w", key, err)
	}
	return value, nil
}

func (s *profileService) putSetting(ctx context.Context, key, value string) error {
	if err := s.settings.Put(ctx, key, value); err != nil {
		return fmt.Errorf("save %s setting: %w", key, err)
	}
	return nil
}
