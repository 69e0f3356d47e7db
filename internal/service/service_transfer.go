package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/internal/transfer"
	"github.com/msavelyeva/nutrikeep/models"
)

type transferService struct {
	storages *store.Storages
}

func NewTransferService(storages *store.Storages) TransferService {
	return &transferService{storages: storages}
}

// Export implements TransferService. A nil or empty section list exports
// everything.
func (s *transferService) Export(ctx context.Context, sections []string, format transfer.Format) ([]byte, error) {
	if len(sections) == 0 {
		sections = models.AllSections
	}
	for _, section := range sections {
		if !slices.Contains(models.AllSections, section) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
		}
	}

	bundle, err := s.assembleBundle(ctx, sections)
	if err != nil {
		return nil, err
	}

	data, err := transfer.Encode(bundle, format)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}

func (s *transferService) assembleBundle(ctx context.Context, sections []string) (models.ExportBundle, error) {
	var bundle models.ExportBundle
	var err error

	for _, section := range sections {
		switch section {
		case models.SectionUserData:
			if err = s.collectUserData(ctx, &bundle); err != nil {
				return models.ExportBundle{}, err
			}
		case models.SectionDailyConsumption:
			if bundle.DailyLogs, err = s.storages.DailyLogRepository.GetAll(ctx); err != nil {
				return models.ExportBundle{}, fmt.Errorf("export daily logs: %w", err)
			}
			if bundle.DailyLogs == nil {
				bundle.DailyLogs = []*models.DailyLog{}
			}
		case models.SectionProducts:
			if bundle.Products, err = s.storages.ProductRepository.GetAll(ctx); err != nil {
				return models.ExportBundle{}, fmt.Errorf("export products: %w", err)
			}
			if bundle.Products == nil {
				bundle.Products = []models.Product{}
			}
		case models.SectionFavorites:
			if bundle.Favorites, err = s.storages.FavoriteRepository.GetAll(ctx); err != nil {
				return models.ExportBundle{}, fmt.Errorf("export favorites: %w", err)
			}
			if bundle.Favorites == nil {
				bundle.Favorites = []string{}
			}
		case models.SectionMeals:
			if bundle.Meals, err = s.storages.MealRepository.GetAll(ctx); err != nil {
				return models.ExportBundle{}, fmt.Errorf("export meals: %w", err)
			}
			if bundle.Meals == nil {
				bundle.Meals = []models.Meal{}
			}
		}
	}
	return bundle, nil
}

// collectUserData gathers the profile settings record and the weight history,
// which together form the user_data section.
func (s *transferService) collectUserData(ctx context.Context, bundle *models.ExportBundle) error {
	raw, err := s.storages.SettingsRepository.Get(ctx, store.SettingUserProfile)
	switch {
	case errors.Is(err, store.ErrSettingNotFound):
		// no profile saved yet, export weight history alone
	case err != nil:
		return fmt.Errorf("export profile: %w", err)
	default:
		var profile models.UserProfile
		if err = json.Unmarshal([]byte(raw), &profile); err != nil {
			return fmt.Errorf("export profile: decode stored value: %w", err)
		}
		bundle.UserProfile = &profile
	}

	if bundle.WeightHistory, err = s.storages.WeightRepository.GetAll(ctx); err != nil {
		return fmt.Errorf("export weight history: %w", err)
	}
	if bundle.WeightHistory == nil {
		bundle.WeightHistory = []models.WeightEntry{}
	}
	return nil
}

// Import implements TransferService. Parsing is all-or-nothing; the write
// phase is best effort and not transactional. With override unset, a record
// is only written when no stored record shares its key, so an import never
// silently clobbers existing data.
func (s *transferService) Import(ctx context.Context, data []byte, format transfer.Format, override bool) (models.ImportReport, error) {
	bundle, err := transfer.Decode(data, format)
	if err != nil {
		return models.ImportReport{}, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	var report models.ImportReport
	s.importProfile(ctx, &report, bundle.UserProfile, override)
	s.importWeightHistory(ctx, &report, bundle.WeightHistory, override)
	s.importDailyLogs(ctx, &report, bundle.DailyLogs, override)
	s.importProducts(ctx, &report, bundle.Products, override)
	s.importFavorites(ctx, &report, bundle.Favorites)
	s.importMeals(ctx, &report, bundle.Meals, override)
	return report, nil
}

func (s *transferService) importProfile(ctx context.Context, report *models.ImportReport, profile *models.UserProfile, override bool) {
	if profile == nil {
		return
	}

	if !override {
		_, err := s.storages.SettingsRepository.Get(ctx, store.SettingUserProfile)
		if err == nil {
			return
		}
		if !errors.Is(err, store.ErrSettingNotFound) {
			recordFailure(ctx, report, models.SectionUserData, store.SettingUserProfile, err)
			return
		}
	}

	raw, err := json.Marshal(profile)
	if err == nil {
		err = s.storages.SettingsRepository.Put(ctx, store.SettingUserProfile, string(raw))
	}
	if err != nil {
		recordFailure(ctx, report, models.SectionUserData, store.SettingUserProfile, err)
		return
	}
	report.Imported++
}

func (s *transferService) importWeightHistory(ctx context.Context, report *models.ImportReport, entries []models.WeightEntry, override bool) {
	for _, entry := range entries {
		if !override {
			_, err := s.storages.WeightRepository.Get(ctx, entry.Date)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrWeightEntryNotFound) {
				recordFailure(ctx, report, models.SectionUserData, entry.Date, err)
				continue
			}
		}

		if err := s.storages.WeightRepository.Put(ctx, entry); err != nil {
			recordFailure(ctx, report, models.SectionUserData, entry.Date, err)
			continue
		}
		report.Imported++
	}
}

func (s *transferService) importDailyLogs(ctx context.Context, report *models.ImportReport, logs []*models.DailyLog, override bool) {
	for _, log := range logs {
		if !override {
			_, err := s.storages.DailyLogRepository.Get(ctx, log.Date)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrDailyLogNotFound) {
				recordFailure(ctx, report, models.SectionDailyConsumption, log.Date, err)
				continue
			}
		}

		log.Normalize()
		if err := s.storages.DailyLogRepository.Put(ctx, log); err != nil {
			recordFailure(ctx, report, models.SectionDailyConsumption, log.Date, err)
			continue
		}
		report.Imported++
	}
}

func (s *transferService) importProducts(ctx context.Context, report *models.ImportReport, products []models.Product, override bool) {
	for _, product := range products {
		if !override {
			_, err := s.storages.ProductRepository.Get(ctx, product.Code)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrProductNotFound) {
				recordFailure(ctx, report, models.SectionProducts, product.Code, err)
				continue
			}
		}

		if err := s.storages.ProductRepository.Put(ctx, product); err != nil {
			recordFailure(ctx, report, models.SectionProducts, product.Code, err)
			continue
		}
		report.Imported++
	}
}

// importFavorites ignores override: adding an already-present code is a
// no-op upsert either way.
func (s *transferService) importFavorites(ctx context.Context, report *models.ImportReport, codes []string) {
	for _, code := range codes {
		favorited, err := s.storages.FavoriteRepository.Is(ctx, code)
		if err != nil {
			recordFailure(ctx, report, models.SectionFavorites, code, err)
			continue
		}
		if favorited {
			continue
		}

		if err = s.storages.FavoriteRepository.Add(ctx, code); err != nil {
			recordFailure(ctx, report, models.SectionFavorites, code, err)
			continue
		}
		report.Imported++
	}
}

func (s *transferService) importMeals(ctx context.Context, report *models.ImportReport, meals []models.Meal, override bool) {
	for _, meal := range meals {
		if !override {
			_, err := s.storages.MealRepository.Get(ctx, meal.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrMealNotFound) {
				recordFailure(ctx, report, models.SectionMeals, meal.ID, err)
				continue
			}
		}

		if err := s.storages.MealRepository.Put(ctx, meal); err != nil {
			recordFailure(ctx, report, models.SectionMeals, meal.ID, err)
			continue
		}
		report.Imported++
	}
}

func recordFailure(ctx context.Context, report *models.ImportReport, section, key string, err error) {
	logger.FromContext(ctx).Err(err).
		Str("func", "transferService.Import").
		Str("section", section).
		Str("key", key).
		Msg("failed to import record")

	report.Failed = append(report.Failed, models.ImportFailure{
		Section: section,
		Key:     key,
		Err:     fmt.Errorf("%w: %v", ErrImportWrite, err),
	})
}

// ClearAllData implements TransferService. The wipe covers the record
// collections and the settings table, profile and theme included.
func (s *transferService) ClearAllData(ctx context.Context) error {
	if err := s.storages.ClearAll(ctx); err != nil {
		return fmt.Errorf("wipe store: %w", err)
	}
	return nil
}
