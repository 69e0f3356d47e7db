package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/models"
)

// In-memory fakes standing in for the sqlite repositories. They keep the
// same contracts (sentinel errors for absence, whole-record upserts, visitor
// scans) and allow error injection for the failure paths.

type fakeDailyLogRepo struct {
	logs map[string]*models.DailyLog

	getErr  error
	putErr  error
	scanErr error // returned by ForEach after visiting scanErrAfter records

	scanErrAfter int
	puts         int
}

func newFakeDailyLogRepo() *fakeDailyLogRepo {
	return &fakeDailyLogRepo{logs: map[string]*models.DailyLog{}}
}

func (f *fakeDailyLogRepo) Get(_ context.Context, date string) (*models.DailyLog, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	log, ok := f.logs[date]
	if !ok {
		return nil, store.ErrDailyLogNotFound
	}
	return cloneLog(log), nil
}

func (f *fakeDailyLogRepo) Put(_ context.Context, log *models.DailyLog) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.logs[log.Date] = cloneLog(log)
	return nil
}

func (f *fakeDailyLogRepo) Delete(_ context.Context, date string) error {
	delete(f.logs, date)
	return nil
}

func (f *fakeDailyLogRepo) GetAll(_ context.Context) ([]*models.DailyLog, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	all := make([]*models.DailyLog, 0, len(f.logs))
	for _, date := range sortedKeys(f.logs) {
		all = append(all, cloneLog(f.logs[date]))
	}
	return all, nil
}

func (f *fakeDailyLogRepo) ForEach(_ context.Context, visit store.DailyLogVisitor) error {
	visited := 0
	for _, date := range sortedKeys(f.logs) {
		if f.scanErr != nil && visited >= f.scanErrAfter {
			return f.scanErr
		}
		log := cloneLog(f.logs[date])
		changed, err := visit(log)
		if err != nil {
			return err
		}
		if changed {
			f.puts++
			f.logs[date] = log
		}
		visited++
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]models.Product

	getErr error
	putErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]models.Product{}}
}

func (f *fakeProductRepo) Get(_ context.Context, code string) (models.Product, error) {
	if f.getErr != nil {
		return models.Product{}, f.getErr
	}
	product, ok := f.products[code]
	if !ok {
		return models.Product{}, store.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) Put(_ context.Context, product models.Product) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.products[product.Code] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, code string) error {
	delete(f.products, code)
	return nil
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]models.Product, error) {
	all := make([]models.Product, 0, len(f.products))
	for _, code := range sortedKeys(f.products) {
		all = append(all, f.products[code])
	}
	return all, nil
}

func (f *fakeProductRepo) SearchByName(_ context.Context, namePart string, limit int) ([]models.Product, error) {
	var found []models.Product
	for _, code := range sortedKeys(f.products) {
		p := f.products[code]
		if len(found) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(namePart)) {
			found = append(found, p)
		}
	}
	return found, nil
}

func (f *fakeProductRepo) GetStale(_ context.Context, cutoff time.Time) ([]models.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var stale []models.Product
	for _, code := range sortedKeys(f.products) {
		p := f.products[code]
		if !p.UserEdited && p.FetchedAt.Before(cutoff) {
			stale = append(stale, p)
		}
	}
	return stale, nil
}

type fakeFavoriteRepo struct {
	codes map[string]bool

	err error
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{codes: map[string]bool{}}
}

func (f *fakeFavoriteRepo) Add(_ context.Context, code string) error {
	if f.err != nil {
		return f.err
	}
	f.codes[code] = true
	return nil
}

func (f *fakeFavoriteRepo) Remove(_ context.Context, code string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.codes, code)
	return nil
}

func (f *fakeFavoriteRepo) Is(_ context.Context, code string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.codes[code], nil
}

func (f *fakeFavoriteRepo) GetAll(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return sortedKeys(f.codes), nil
}

type fakeMealRepo struct {
	meals map[string]models.Meal

	putErr error
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{meals: map[string]models.Meal{}}
}

func (f *fakeMealRepo) Get(_ context.Context, id string) (models.Meal, error) {
	meal, ok := f.meals[id]
	if !ok {
		return models.Meal{}, store.ErrMealNotFound
	}
	return meal, nil
}

func (f *fakeMealRepo) Put(_ context.Context, meal models.Meal) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.meals[meal.ID] = meal
	return nil
}

func (f *fakeMealRepo) Delete(_ context.Context, id string) error {
	delete(f.meals, id)
	return nil
}

func (f *fakeMealRepo) GetAll(_ context.Context) ([]models.Meal, error) {
	all := make([]models.Meal, 0, len(f.meals))
	for _, id := range sortedKeys(f.meals) {
		all = append(all, f.meals[id])
	}
	return all, nil
}

func (f *fakeMealRepo) ForEach(_ context.Context, visit store.MealVisitor) error {
	for _, id := range sortedKeys(f.meals) {
		meal := f.meals[id]
		changed, err := visit(&meal)
		if err != nil {
			return err
		}
		if changed {
			f.meals[id] = meal
		}
	}
	return nil
}

type fakeWeightRepo struct {
	entries map[string]models.WeightEntry

	putErr error
}

func newFakeWeightRepo() *fakeWeightRepo {
	return &fakeWeightRepo{entries: map[string]models.WeightEntry{}}
}

func (f *fakeWeightRepo) Get(_ context.Context, date string) (models.WeightEntry, error) {
	entry, ok := f.entries[date]
	if !ok {
		return models.WeightEntry{}, store.ErrWeightEntryNotFound
	}
	return entry, nil
}

func (f *fakeWeightRepo) Put(_ context.Context, entry models.WeightEntry) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.entries[entry.Date] = entry
	return nil
}

func (f *fakeWeightRepo) Delete(_ context.Context, date string) error {
	delete(f.entries, date)
	return nil
}

func (f *fakeWeightRepo) GetAll(_ context.Context) ([]models.WeightEntry, error) {
	all := make([]models.WeightEntry, 0, len(f.entries))
	for _, date := range sortedKeys(f.entries) {
		all = append(all, f.entries[date])
	}
	return all, nil
}

func (f *fakeWeightRepo) GetRange(_ context.Context, fromDate, toDate string) ([]models.WeightEntry, error) {
	var inRange []models.WeightEntry
	for _, date := range sortedKeys(f.entries) {
		if date >= fromDate && date <= toDate {
			inRange = append(inRange, f.entries[date])
		}
	}
	return inRange, nil
}

type fakeSettingsRepo struct {
	values map[string]string

	err error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: map[string]string{}}
}

func (f *fakeSettingsRepo) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.values[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return value, nil
}

func (f *fakeSettingsRepo) Put(_ context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

func (f *fakeSettingsRepo) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

// fakeProvider is a scripted FoodDataProvider.
type fakeProvider struct {
	products map[string]models.Product

	searchResults []models.Product
	searchErr     error
	lookupErr     error

	lookups  []string
	searches []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{products: map[string]models.Product{}}
}

func (f *fakeProvider) LookupBarcode(_ context.Context, code string) (models.Product, error) {
	f.lookups = append(f.lookups, code)
	if f.lookupErr != nil {
		return models.Product{}, f.lookupErr
	}
	product, ok := f.products[code]
	if !ok {
		return models.Product{}, fmt.Errorf("fake provider: %w", errors.New("no such barcode"))
	}
	return product, nil
}

func (f *fakeProvider) Search(_ context.Context, query string, _ int) ([]models.Product, error) {
	f.searches = append(f.searches, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

// testEnv собирает все фейки в одном месте.
type testEnv struct {
	storages  *store.Storages
	dailyLogs *fakeDailyLogRepo
	products  *fakeProductRepo
	favorites *fakeFavoriteRepo
	meals     *fakeMealRepo
	weights   *fakeWeightRepo
	settings  *fakeSettingsRepo
	provider  *fakeProvider
}

func newTestEnv() *testEnv {
	env := &testEnv{
		dailyLogs: newFakeDailyLogRepo(),
		products:  newFakeProductRepo(),
		favorites: newFakeFavoriteRepo(),
		meals:     newFakeMealRepo(),
		weights:   newFakeWeightRepo(),
		settings:  newFakeSettingsRepo(),
		provider:  newFakeProvider(),
	}
	env.storages = &store.Storages{
		DailyLogRepository: env.dailyLogs,
		ProductRepository:  env.products,
		FavoriteRepository: env.favorites,
		MealRepository:     env.meals,
		WeightRepository:   env.weights,
		SettingsRepository: env.settings,
	}
	return env
}

func cloneLog(log *models.DailyLog) *models.DailyLog {
	clone := models.NewDailyLog(log.Date)
	for category, entries := range log.Entries {
		clone.Entries[category] = append([]models.FoodEntry{}, entries...)
	}
	return clone
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func snapshot(code, name string, calories float64) models.Product {
	return models.Product{
		Code:      code,
		Name:      name,
		Nutrients: models.Nutrients{Calories: calories},
	}
}

func gramEntry(p models.Product, quantity float64) models.FoodEntry {
	return models.FoodEntry{Product: p, Quantity: quantity, Unit: models.UnitGram}
}
