package service

import (
	"testing"
	"time"

	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormModeFor(t *testing.T) {
	weddingDate := "2025-06-14"

	tests := []struct {
		today string
		want  models.FormMode
	}{
		{"2025-06-13", models.FormModeRSVP},
		{"2025-06-14", models.FormModePhotoUpload},
		// Past the date falls back to the RSVP form, not an error state.
		{"2025-06-15", models.FormModeRSVP},
	}

	for _, tt := range tests {
		now, err := time.ParseInLocation("2006-01-02", tt.today, time.Local)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FormModeFor(weddingDate, now), "today=%s", tt.today)
	}
}

func TestComputeCountdown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counting breakdown", func(t *testing.T) {
		// 90,061s = 1 day, 1 hour, 1 minute, 1 second.
		got := ComputeCountdown(now, now.Add(90061*time.Second))
		assert.Equal(t, models.CountdownCounting, got.State)
		assert.Equal(t, 1, got.Days)
		assert.Equal(t, 1, got.Hours)
		assert.Equal(t, 1, got.Minutes)
		assert.Equal(t, 1, got.Seconds)
	})

	t.Run("within final day", func(t *testing.T) {
		got := ComputeCountdown(now, now.Add(23*time.Hour))
		assert.Equal(t, models.CountdownWeddingDay, got.State)
	})

	t.Run("target passed", func(t *testing.T) {
		got := ComputeCountdown(now, now.Add(-time.Minute))
		assert.Equal(t, models.CountdownPassed, got.State)
	})

	t.Run("exactly 24 hours is still counting", func(t *testing.T) {
		got := ComputeCountdown(now, now.Add(24*time.Hour))
		assert.Equal(t, models.CountdownCounting, got.State)
		assert.Equal(t, 1, got.Days)
		assert.Equal(t, 0, got.Hours)
	})
}

func TestWeddingTarget(t *testing.T) {
	wedding := &models.Wedding{WeddingDate: "2025-06-14", WeddingTime: "15:30"}
	target := WeddingTarget(wedding)
	assert.Equal(t, time.Date(2025, 6, 14, 15, 30, 0, 0, time.Local), target)

	// Missing time means midnight.
	wedding.WeddingTime = ""
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local), WeddingTarget(wedding))
}

func TestGetPublicPage(t *testing.T) {
	weddings := newFakeWeddingStore()
	stories := newFakeLoveStoryStore()
	photos := newFakePhotoStore()
	st := newFakeStorage()

	wedding, err := weddings.Create(&models.Wedding{
		UserID:        1,
		Title:         "Anna & Ben",
		BrideName:     "Anna",
		GroomName:     "Ben",
		WeddingDate:   "2025-06-14",
		PhotoPassword: "secret",
		PublicURLSlug: "anna-ben",
		IsActive:      true,
	})
	require.NoError(t, err)

	require.NoError(t, stories.Create(&models.LoveStoryEvent{
		WeddingID: wedding.ID, Title: "First date", OrderIndex: 0,
	}))
	require.NoError(t, photos.Create(&models.Photo{
		WeddingID: wedding.ID, FilePath: "1/a.jpg",
		PhotoType: models.PhotoTypeGuest, ApprovalStatus: models.ApprovalApproved,
	}))
	require.NoError(t, photos.Create(&models.Photo{
		WeddingID: wedding.ID, FilePath: "1/b.jpg",
		PhotoType: models.PhotoTypeGuest, ApprovalStatus: models.ApprovalPending,
	}))

	photoService := NewPhotoService(photos, weddings, st, &fakePublisher{}, testConfig(), zap.NewNop())
	publicService := NewPublicService(weddings, stories, photos, photoService)

	dayBefore := time.Date(2025, 6, 13, 10, 0, 0, 0, time.Local)
	page, err := publicService.GetPublicPage("anna-ben", dayBefore)
	require.NoError(t, err)

	assert.Equal(t, "Anna & Ben", page.Wedding.Title)
	assert.Equal(t, models.FormModeRSVP, page.FormMode)
	require.Len(t, page.Timeline, 1)
	// Only approved photos make the slideshow.
	require.Len(t, page.Slideshow, 1)
	assert.Equal(t, "https://cdn.test/wedding-photos/1/a.jpg", page.Slideshow[0])

	weddingDay := time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local)
	page, err = publicService.GetPublicPage("anna-ben", weddingDay)
	require.NoError(t, err)
	assert.Equal(t, models.FormModePhotoUpload, page.FormMode)
}

func TestGetPublicPageInactiveWeddingHidden(t *testing.T) {
	weddings := newFakeWeddingStore()
	_, err := weddings.Create(&models.Wedding{
		UserID: 1, PublicURLSlug: "anna-ben", WeddingDate: "2025-06-14", IsActive: false,
	})
	require.NoError(t, err)

	photos := newFakePhotoStore()
	photoService := NewPhotoService(photos, weddings, newFakeStorage(), &fakePublisher{}, testConfig(), zap.NewNop())
	publicService := NewPublicService(weddings, newFakeLoveStoryStore(), photos, photoService)

	_, err = publicService.GetPublicPage("anna-ben", time.Now())
	assert.Error(t, err)
}
