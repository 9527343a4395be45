package service

import (
	"testing"

	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type photoFixture struct {
	weddings *fakeWeddingStore
	photos   *fakePhotoStore
	storage  *fakeStorage
	pub      *fakePublisher
	service  *PhotoService
	wedding  *models.Wedding
}

func newPhotoFixture(t *testing.T) *photoFixture {
	t.Helper()

	weddings := newFakeWeddingStore()
	photos := newFakePhotoStore()
	st := newFakeStorage()
	pub := &fakePublisher{}

	wedding, err := weddings.Create(&models.Wedding{
		UserID:        1,
		WeddingDate:   "2025-06-14",
		PhotoPassword: "secret",
		PublicURLSlug: "anna-ben",
		IsActive:      true,
	})
	require.NoError(t, err)

	return &photoFixture{
		weddings: weddings,
		photos:   photos,
		storage:  st,
		pub:      pub,
		service:  NewPhotoService(photos, weddings, st, pub, testConfig(), zap.NewNop()),
		wedding:  wedding,
	}
}

func TestUploadGuestPhotoStartsPending(t *testing.T) {
	f := newPhotoFixture(t)

	photo, err := f.service.UploadGuestPhoto("anna-ben", "Clara Miller",
		fileHeader(t, "dance.jpg", "image/jpeg", []byte("jpeg-bytes")))
	require.NoError(t, err)

	assert.Equal(t, models.PhotoTypeGuest, photo.PhotoType)
	assert.Equal(t, models.ApprovalPending, photo.ApprovalStatus)
	assert.Equal(t, "Clara Miller", photo.UploadedByGuest)
	assert.NotEmpty(t, photo.FilePath)

	// The binary landed in the photo bucket under the generated key.
	_, err = f.storage.Download("wedding-photos", photo.FilePath)
	assert.NoError(t, err)

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, realtime.ChangeInsert, f.pub.events[0].Kind)
}

func TestUploadGuestPhotoRejectsBadType(t *testing.T) {
	f := newPhotoFixture(t)

	_, err := f.service.UploadGuestPhoto("anna-ben", "Clara Miller",
		fileHeader(t, "notes.txt", "text/plain", []byte("hello")))
	assert.Error(t, err)
	assert.Empty(t, f.photos.photos)
}

func TestSetApprovalStatusAnyTransition(t *testing.T) {
	f := newPhotoFixture(t)

	photo := &models.Photo{
		WeddingID:      f.wedding.ID,
		ApprovalStatus: models.ApprovalPending,
		PhotoType:      models.PhotoTypeGuest,
	}
	require.NoError(t, f.photos.Create(photo))

	// approve -> reject (remove) -> approve (restore): no transition is
	// forbidden, it is all the same underlying operation.
	for _, status := range []models.ApprovalStatus{
		models.ApprovalApproved,
		models.ApprovalRejected,
		models.ApprovalApproved,
		models.ApprovalPending,
	} {
		got, err := f.service.SetApprovalStatus(photo.ID, 1, status)
		require.NoError(t, err)
		assert.Equal(t, status, got.ApprovalStatus)
	}
}

func TestSetApprovalStatusRequiresOwnership(t *testing.T) {
	f := newPhotoFixture(t)

	photo := &models.Photo{
		WeddingID:      f.wedding.ID,
		ApprovalStatus: models.ApprovalPending,
		PhotoType:      models.PhotoTypeGuest,
	}
	require.NoError(t, f.photos.Create(photo))

	_, err := f.service.SetApprovalStatus(photo.ID, 99, models.ApprovalApproved)
	assert.ErrorIs(t, err, ErrNotWeddingOwner)
}

func TestListForModerationExcludesCovers(t *testing.T) {
	f := newPhotoFixture(t)

	seed := []models.Photo{
		{WeddingID: f.wedding.ID, PhotoType: models.PhotoTypeGuest, ApprovalStatus: models.ApprovalPending},
		{WeddingID: f.wedding.ID, PhotoType: models.PhotoTypeGuest, ApprovalStatus: models.ApprovalApproved},
		{WeddingID: f.wedding.ID, PhotoType: models.PhotoTypeGuest, ApprovalStatus: models.ApprovalRejected},
		{WeddingID: f.wedding.ID, PhotoType: models.PhotoTypeCover, ApprovalStatus: models.ApprovalApproved},
	}
	for i := range seed {
		require.NoError(t, f.photos.Create(&seed[i]))
	}

	listing, err := f.service.ListForModeration(f.wedding.ID, 1)
	require.NoError(t, err)
	assert.Len(t, listing.Pending, 1)
	assert.Len(t, listing.Approved, 1)
	assert.Len(t, listing.Rejected, 1)
}

func TestPublicGalleryPasswordGate(t *testing.T) {
	f := newPhotoFixture(t)

	approved := &models.Photo{
		WeddingID:      f.wedding.ID,
		FilePath:       "1/abc.jpg",
		PhotoType:      models.PhotoTypeGuest,
		ApprovalStatus: models.ApprovalApproved,
	}
	pending := &models.Photo{
		WeddingID:      f.wedding.ID,
		FilePath:       "1/def.jpg",
		PhotoType:      models.PhotoTypeGuest,
		ApprovalStatus: models.ApprovalPending,
	}
	require.NoError(t, f.photos.Create(approved))
	require.NoError(t, f.photos.Create(pending))

	_, err := f.service.PublicGallery("anna-ben", "wrong")
	assert.Error(t, err)

	photos, err := f.service.PublicGallery("anna-ben", "secret")
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, approved.ID, photos[0].ID)
	assert.Equal(t, "https://cdn.test/wedding-photos/1/abc.jpg", photos[0].PublicURL)
}

func TestDeletePhotoRemovesObjectAndRow(t *testing.T) {
	f := newPhotoFixture(t)

	photo, err := f.service.UploadGuestPhoto("anna-ben", "Clara Miller",
		fileHeader(t, "dance.jpg", "image/jpeg", []byte("jpeg-bytes")))
	require.NoError(t, err)

	require.NoError(t, f.service.DeletePhoto(photo.ID, 1))

	_, err = f.photos.GetByID(photo.ID)
	assert.Error(t, err)
	_, err = f.storage.Download("wedding-photos", photo.FilePath)
	assert.Error(t, err)
}
