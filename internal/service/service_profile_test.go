package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msavelyeva/nutrikeep/models"
)

func TestProfileService_GetProfile_AbsentReturnsZero(t *testing.T) {
	env := newTestEnv()
	svc := NewProfileService(env.storages)

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{}, profile)
}

func TestProfileService_SaveAndGetProfile(t *testing.T) {
	env := newTestEnv()
	svc := NewProfileService(env.storages)
	ctx := context.Background()

	saved := models.UserProfile{
		Height:        170,
		Weight:        65.5,
		Gender:        "female",
		Age:           30,
		DailyCalories: 1800,
		ProteinRatio:  0.3,
		CarbsRatio:    0.45,
		FatRatio:      0.25,
	}
	require.NoError(t, svc.SaveProfile(ctx, saved))

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestProfileService_ThemeAndLanguage(t *testing.T) {
	env := newTestEnv()
	svc := NewProfileService(env.storages)
	ctx := context.Background()

	theme, err := svc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Empty(t, theme, "unset theme reads as empty, not an error")

	require.NoError(t, svc.SetTheme(ctx, "dark"))
	require.NoError(t, svc.SetLanguage(ctx, "ru"))

	theme, err = svc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	language, err := svc.GetLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ru", language)
}

func TestProfileService_SuggestedCalories(t *testing.T) {
	env := newTestEnv()
	svc := NewProfileService(env.storages)

	male := models.UserProfile{Height: 180, Weight: 80, Gender: "male", Age: 30}
	// 10*80 + 6.25*180 - 5*30 + 5
	assert.InDelta(t, 1780, svc.SuggestedCalories(male), 0.01)

	female := models.UserProfile{Height: 170, Weight: 65, Gender: "female", Age: 30}
	// 10*65 + 6.25*170 - 5*30 - 161
	assert.InDelta(t, 1401.5, svc.SuggestedCalories(female), 0.01)

	assert.Zero(t, svc.SuggestedCalories(models.UserProfile{}), "incomplete body data yields no suggestion")
}
