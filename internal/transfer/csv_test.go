// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

package transfer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/models"
)

func TestEncodeCSVGolden(t *testing.T) {
	data, err := Encode(fixtureBundle(), FormatCSV)
	require.NoError(t, err)

	newGoldie(t).Assert(t, "bundle_csv", data)
}

func TestEncodeCSVOmitsAbsentSections(t *testing.T) {
	data, err := Encode(models.ExportBundle{
		WeightHistory: []models.WeightEntry{{Date: "2026-08-01", Weight: 80}},
	}, FormatCSV)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "--- WEIGHT HISTORY ---")
	assert.NotContains(t, text, "--- USER PROFILE ---")
	assert.NotContains(t, text, "--- DAILY CONSUMPTION ---")
	assert.NotContains(t, text, "--- FAVORITES ---")
}

func TestCSVRoundTrip(t *testing.T) {
	data, err := Encode(fixtureBundle(), FormatCSV)
	require.NoError(t, err)

	decoded, err := Decode(data, FormatCSV)
	require.NoError(t, err)

	require.NotNil(t, decoded.UserProfile)
	assert.InDelta(t, 170, decoded.UserProfile.Height, 0.01)
	assert.Equal(t, "female", decoded.UserProfile.Gender)
	assert.InDelta(t, 0.45, decoded.UserProfile.CarbsRatio, 0.01)

	require.Len(t, decoded.WeightHistory, 2)
	assert.Equal(t, "2026-08-02", decoded.WeightHistory[1].Date)
	assert.InDelta(t, 65.2, decoded.WeightHistory[1].Weight, 0.01)

	require.Len(t, decoded.DailyLogs, 1)
	log := decoded.DailyLogs[0]
	assert.Equal(t, "2026-08-01", log.Date)
	require.Len(t, log.Entries[models.CategoryBreakfast], 1)
	breakfast := log.Entries[models.CategoryBreakfast][0]
	assert.Equal(t, "Nutella", breakfast.Product.Name)
	assert.InDelta(t, 15, breakfast.Quantity, 0.01)
	assert.Equal(t, models.UnitGram, breakfast.Unit)
	assert.InDelta(t, 539, breakfast.Product.Nutrients.Calories, 0.1)
	assert.InDelta(t, 6.3, breakfast.Product.Nutrients.Protein, 0.1)

	// commas inside quoted fields survive the trip
	require.Len(t, log.Entries[models.CategoryLunch], 1)
	assert.Equal(t, "Rice, cooked", log.Entries[models.CategoryLunch][0].Product.Name)

	require.Len(t, decoded.Meals, 1)
	meal := decoded.Meals[0]
	assert.Equal(t, "meal-0198a6c2", meal.ID)
	assert.Equal(t, "Oatmeal breakfast", meal.Name)
	require.Len(t, meal.Foods, 2)
	assert.Equal(t, "Milk, whole", meal.Foods[1].Product.Name)
	assert.InDelta(t, 200, meal.Foods[1].Quantity, 0.01)

	assert.Equal(t, []string{"3017620422003"}, decoded.Favorites)

	// the product cache never travels via CSV
	assert.Empty(t, decoded.Products)
}

func TestDecodeCSVGroupsRowsByDate(t *testing.T) {
	payload := strings.Join([]string{
		"--- DAILY CONSUMPTION ---",
		"Date,Category,ProductName,Quantity,Unit,Calories,Carbs,Fat,Protein",
		"2026-08-02,dinner,Pasta,120,g,157,30.9,0.9,5.8",
		"2026-08-01,breakfast,Oats,40,g,379,67.7,6.5,13.2",
		"2026-08-02,dinner,Tomato sauce,80,g,29,5.1,0.2,1.4",
		"",
	}, "\n")

	bundle, err := Decode([]byte(payload), FormatCSV)
	require.NoError(t, err)

	require.Len(t, bundle.DailyLogs, 2)
	assert.Equal(t, "2026-08-02", bundle.DailyLogs[0].Date)
	require.Len(t, bundle.DailyLogs[0].Entries[models.CategoryDinner], 2)
	assert.Equal(t, "Pasta", bundle.DailyLogs[0].Entries[models.CategoryDinner][0].Product.Name)
	assert.Equal(t, "Tomato sauce", bundle.DailyLogs[0].Entries[models.CategoryDinner][1].Product.Name)

	for _, category := range models.Categories {
		assert.NotNil(t, bundle.DailyLogs[0].Entries[category])
	}
}

func TestDecodeCSVFailFast(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "unknown section",
			payload: "--- SHOPPING LIST ---\nItem\nMilk\n",
		},
		{
			name:    "stray text before a section",
			payload: "hello\n--- FAVORITES ---\nProductCode\n123\n",
		},
		{
			name:    "wrong column header",
			payload: "--- WEIGHT HISTORY ---\nDate,Mass\n2026-08-01,80\n",
		},
		{
			name:    "missing column header",
			payload: "--- FAVORITES ---\n",
		},
		{
			name:    "non-numeric weight",
			payload: "--- WEIGHT HISTORY ---\nDate,Weight\n2026-08-01,heavy\n",
		},
		{
			name:    "unknown category",
			payload: "--- DAILY CONSUMPTION ---\nDate,Category,ProductName,Quantity,Unit,Calories,Carbs,Fat,Protein\n2026-08-01,brunch,Oats,40,g,379,67.7,6.5,13.2\n",
		},
		{
			name:    "ragged row",
			payload: "--- WEIGHT HISTORY ---\nDate,Weight\n2026-08-01\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload), FormatCSV)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestDecodeCSVEmptyPayload(t *testing.T) {
	bundle, err := Decode([]byte("\n\n"), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, models.ExportBundle{}, bundle)
}

func TestDecodeCSVToleratesCRLF(t *testing.T) {
	payload := "--- FAVORITES ---\r\nProductCode\r\n3017620422003\r\n"

	bundle, err := Decode([]byte(payload), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"3017620422003"}, bundle.Favorites)
}
