package service

import (
	"strings"
	"testing"

	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weddingFixture struct {
	service  *WeddingService
	weddings *fakeWeddingStore
	photos   *fakePhotoStore
	storage  *fakeStorage
}

func newWeddingFixture() *weddingFixture {
	weddings := newFakeWeddingStore()
	photos := newFakePhotoStore()
	objects := newFakeStorage()
	qr := qrcode.NewQRService("https://ourwedding.test/w/")

	return &weddingFixture{
		service:  NewWeddingService(weddings, photos, objects, qr, testConfig()),
		weddings: weddings,
		photos:   photos,
		storage:  objects,
	}
}

func TestCreateWeddingSlugFromCoupleNames(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{
		Title:       "Our Big Day",
		BrideName:   "Anna",
		GroomName:   "Ben",
		WeddingDate: "2025-06-14",
	})
	require.NoError(t, err)

	assert.Equal(t, "anna-ben", wedding.PublicURLSlug)
	assert.True(t, wedding.IsActive)
}

func TestCreateWeddingSlugCollisionGetsSuffix(t *testing.T) {
	f := newWeddingFixture()

	first, err := f.service.CreateWedding(1, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)
	second, err := f.service.CreateWedding(2, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)

	assert.Equal(t, "anna-ben", first.PublicURLSlug)
	assert.NotEqual(t, first.PublicURLSlug, second.PublicURLSlug)
	assert.True(t, strings.HasPrefix(second.PublicURLSlug, "anna-ben-"))
}

func TestGetWeddingRequiresOwnership(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)

	_, err = f.service.GetWedding(wedding.ID, 2)
	assert.ErrorIs(t, err, ErrNotWeddingOwner)
}

func TestUpdateWeddingOnlyTouchesProvidedFields(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{
		BrideName: "Anna", GroomName: "Ben", Venue: "Old Barn", WeddingDate: "2025-06-14",
	})
	require.NoError(t, err)

	venue := "Lakeside Hall"
	updated, err := f.service.UpdateWedding(wedding.ID, 1, models.UpdateWeddingRequest{Venue: &venue})
	require.NoError(t, err)

	assert.Equal(t, "Lakeside Hall", updated.Venue)
	assert.Equal(t, "Anna", updated.BrideName)
	assert.Equal(t, "2025-06-14", updated.WeddingDate)
}

func TestDeactivateWeddingKeepsTheRow(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeactivateWedding(wedding.ID, 1))

	stored, err := f.weddings.GetByID(wedding.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestUploadCoverPhotoIsApprovedAndSkipsModeration(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)

	file := fileHeader(t, "cover.jpg", "image/jpeg", []byte("jpeg-bytes"))
	updated, err := f.service.UploadCoverPhoto(wedding.ID, 1, file)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(updated.CoverPhotoPath, "covers/wedding-cover-"))
	assert.NotEmpty(t, updated.CoverPhotoURL)

	require.Len(t, f.photos.photos, 1)
	for _, photo := range f.photos.photos {
		assert.Equal(t, models.PhotoTypeCover, photo.PhotoType)
		assert.Equal(t, models.ApprovalApproved, photo.ApprovalStatus)
	}

	// Covers are never in the guest moderation queue.
	guestPhotos, err := f.photos.GetGuestPhotosByWeddingID(wedding.ID)
	require.NoError(t, err)
	assert.Empty(t, guestPhotos)

	_, ok := f.storage.objects["wedding-images/"+updated.CoverPhotoPath]
	assert.True(t, ok)
}

func TestUploadCoverPhotoRejectsNonImage(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)

	file := fileHeader(t, "notes.txt", "text/plain", []byte("hello"))
	_, err = f.service.UploadCoverPhoto(wedding.ID, 1, file)
	assert.EqualError(t, err, "invalid file type")
}

func TestWeddingQRProducesPNG(t *testing.T) {
	f := newWeddingFixture()

	wedding, err := f.service.CreateWedding(1, models.WeddingRequest{BrideName: "Anna", GroomName: "Ben"})
	require.NoError(t, err)

	png, err := f.service.WeddingQR(wedding.ID, 1, 256)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}
