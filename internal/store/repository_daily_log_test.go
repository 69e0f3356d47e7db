package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/models"
)

func TestDailyLogGetAbsent(t *testing.T) {
	storages := newTestStorages(t)

	_, err := storages.DailyLogRepository.Get(testContext(), "2026-01-15")
	assert.ErrorIs(t, err, ErrDailyLogNotFound)
}

func TestDailyLogPutGetRoundTrip(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	dayLog := models.NewDailyLog("2026-01-15")
	dayLog.Entries[models.CategoryBreakfast] = append(
		dayLog.Entries[models.CategoryBreakfast],
		testEntry("111", "Oatmeal", 380, 50),
	)
	dayLog.Entries[models.CategoryDinner] = append(
		dayLog.Entries[models.CategoryDinner],
		testEntry("222", "Chicken", 165, 150),
		testEntry("333", "Rice", 130, 100),
	)
	require.NoError(t, storages.DailyLogRepository.Put(ctx, dayLog))

	got, err := storages.DailyLogRepository.Get(ctx, "2026-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15", got.Date)
	require.Len(t, got.Entries[models.CategoryBreakfast], 1)
	assert.Equal(t, "Oatmeal", got.Entries[models.CategoryBreakfast][0].Product.Name)
	// append order is display order
	require.Len(t, got.Entries[models.CategoryDinner], 2)
	assert.Equal(t, "Chicken", got.Entries[models.CategoryDinner][0].Product.Name)
	assert.Equal(t, "Rice", got.Entries[models.CategoryDinner][1].Product.Name)
	// untouched categories come back present and empty
	assert.Empty(t, got.Entries[models.CategoryLunch])
	assert.NotNil(t, got.Entries[models.CategoryLunch])
}

func TestDailyLogPutOverwritesWholeRecord(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	first := models.NewDailyLog("2026-01-15")
	first.Entries[models.CategoryLunch] = []models.FoodEntry{testEntry("111", "Soup", 50, 300)}
	require.NoError(t, storages.DailyLogRepository.Put(ctx, first))

	second := models.NewDailyLog("2026-01-15")
	second.Entries[models.CategoryDinner] = []models.FoodEntry{testEntry("222", "Pasta", 350, 200)}
	require.NoError(t, storages.DailyLogRepository.Put(ctx, second))

	got, err := storages.DailyLogRepository.Get(ctx, "2026-01-15")
	require.NoError(t, err)
	assert.Empty(t, got.Entries[models.CategoryLunch], "no partial merge: old lunch list replaced")
	assert.Len(t, got.Entries[models.CategoryDinner], 1)
}

func TestDailyLogForEachVisitsEveryRecordOnce(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	dates := []string{"2026-01-01", "2026-01-02", "2026-01-03"}
	for _, date := range dates {
		require.NoError(t, storages.DailyLogRepository.Put(ctx, models.NewDailyLog(date)))
	}

	visited := map[string]int{}
	err := storages.DailyLogRepository.ForEach(ctx, func(l *models.DailyLog) (bool, error) {
		visited[l.Date]++
		return false, nil
	})
	require.NoError(t, err)

	require.Len(t, visited, 3)
	for _, date := range dates {
		assert.Equal(t, 1, visited[date])
	}
}

func TestDailyLogForEachWritesBackOnlyChangedRecords(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	modified := models.NewDailyLog("2026-01-01")
	modified.Entries[models.CategoryBreakfast] = []models.FoodEntry{testEntry("111", "Old Name", 100, 50)}
	require.NoError(t, storages.DailyLogRepository.Put(ctx, modified))

	untouched := models.NewDailyLog("2026-01-02")
	untouched.Entries[models.CategoryLunch] = []models.FoodEntry{testEntry("999", "Other", 200, 80)}
	require.NoError(t, storages.DailyLogRepository.Put(ctx, untouched))

	err := storages.DailyLogRepository.ForEach(ctx, func(l *models.DailyLog) (bool, error) {
		if l.Date != "2026-01-01" {
			return false, nil
		}
		l.Entries[models.CategoryBreakfast][0].Product.Name = "New Name"
		return true, nil
	})
	require.NoError(t, err)

	got, err := storages.DailyLogRepository.Get(ctx, "2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Entries[models.CategoryBreakfast][0].Product.Name)

	other, err := storages.DailyLogRepository.Get(ctx, "2026-01-02")
	require.NoError(t, err)
	assert.Equal(t, "Other", other.Entries[models.CategoryLunch][0].Product.Name)
}

func TestDailyLogForEachAbortsOnVisitorError(t *testing.T) {
	storages := newTestStorages(t)
	ctx := testContext()

	for _, date := range []string{"2026-01-01", "2026-01-02", "2026-01-03"} {
		require.NoError(t, storages.DailyLogRepository.Put(ctx, models.NewDailyLog(date)))
	}

	boom := errors.New("visitor failed")
	visits := 0
	err := storages.DailyLogRepository.ForEach(ctx, func(l *models.DailyLog) (bool, error) {
		visits++
		if visits == 2 {
			return false, boom
		}
		return false, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, visits, "scan must stop at the failing record")
}

func TestDailyLogGetQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyLogRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT date, entries").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(testContext(), "2026-01-15")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLogGetCorruptedRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDailyLogRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT date, entries").
		WillReturnRows(sqlmockRows([]string{"date", "entries"}, []any{"2026-01-15", "{not json"}))

	_, err := repo.Get(testContext(), "2026-01-15")
	assert.ErrorIs(t, err, ErrDecodingRecord)
}
