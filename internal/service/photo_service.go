package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/realtime"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
	"go.uber.org/zap"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

type PhotoService struct {
	photoRepo   PhotoStore
	weddingRepo WeddingStore
	storage     storage.ObjectStorage
	publisher   realtime.Publisher
	cfg         *config.Config
	logger      *zap.Logger
}

func NewPhotoService(
	photoRepo PhotoStore,
	weddingRepo WeddingStore,
	objectStorage storage.ObjectStorage,
	publisher realtime.Publisher,
	cfg *config.Config,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photoRepo:   photoRepo,
		weddingRepo: weddingRepo,
		storage:     objectStorage,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
	}
}

// UploadGuestPhoto is the public wedding-day upload path. Guest photos always
// enter moderation as pending.
func (s *PhotoService) UploadGuestPhoto(slug string, uploaderName string, file *multipart.FileHeader) (*models.Photo, error) {
	wedding, err := s.weddingRepo.GetBySlug(slug)
	if err != nil || !wedding.IsActive {
		return nil, errors.New("wedding not found")
	}

	photo, err := s.storeGuestPhoto(wedding.ID, uploaderName, file)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(realtime.Event{WeddingID: wedding.ID, Table: "photos", Kind: realtime.ChangeInsert})
	return photo, nil
}

// storeGuestPhoto uploads the binary and inserts the row. Shared with the
// RSVP intake, which calls it per attached photo.
func (s *PhotoService) storeGuestPhoto(weddingID uint, uploaderName string, file *multipart.FileHeader) (*models.Photo, error) {
	if !isValidImageType(file.Header.Get("Content-Type")) {
		return nil, errors.New("invalid file type")
	}
	if file.Size > maxUploadSize {
		return nil, errors.New("file size too large")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := guestPhotoKey(weddingID, file.Filename)
	if err := s.storage.Upload(s.cfg.R2.PhotoBucket, key, src); err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := &models.Photo{
		WeddingID:       weddingID,
		FileName:        file.Filename,
		FilePath:        key,
		FileSize:        file.Size,
		MimeType:        file.Header.Get("Content-Type"),
		UploadedByGuest: strings.TrimSpace(uploaderName),
		UploadedAt:      time.Now(),
		ApprovalStatus:  models.ApprovalPending,
		PhotoType:       models.PhotoTypeGuest,
	}
	if err := s.photoRepo.Create(photo); err != nil {
		_ = s.storage.Delete(s.cfg.R2.PhotoBucket, key)
		return nil, err
	}
	return photo, nil
}

// ListForModeration groups a wedding's guest photos by approval status.
func (s *PhotoService) ListForModeration(weddingID uint, userID uint) (*models.PhotoModerationResponse, error) {
	wedding, err := s.weddingRepo.GetByID(weddingID)
	if err != nil {
		return nil, errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return nil, ErrNotWeddingOwner
	}

	photos, err := s.photoRepo.GetGuestPhotosByWeddingID(weddingID)
	if err != nil {
		return nil, err
	}

	resp := &models.PhotoModerationResponse{
		Pending:  []models.PhotoResponse{},
		Approved: []models.PhotoResponse{},
		Rejected: []models.PhotoResponse{},
	}
	for _, photo := range photos {
		pr := s.toPhotoResponse(photo)
		switch photo.ApprovalStatus {
		case models.ApprovalApproved:
			resp.Approved = append(resp.Approved, pr)
		case models.ApprovalRejected:
			resp.Rejected = append(resp.Rejected, pr)
		default:
			resp.Pending = append(resp.Pending, pr)
		}
	}
	return resp, nil
}

// SetApprovalStatus is the single operation behind approve, reject, restore
// and remove. Every status is reachable from every other.
func (s *PhotoService) SetApprovalStatus(photoID uint, userID uint, status models.ApprovalStatus) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, errors.New("photo not found")
	}

	wedding, err := s.weddingRepo.GetByID(photo.WeddingID)
	if err != nil {
		return nil, errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return nil, ErrNotWeddingOwner
	}

	if photo.ApprovalStatus != status {
		if err := s.photoRepo.UpdateApprovalStatus(photoID, status); err != nil {
			return nil, err
		}
		photo.ApprovalStatus = status
		s.publisher.Publish(realtime.Event{WeddingID: wedding.ID, Table: "photos", Kind: realtime.ChangeUpdate})
	}
	return photo, nil
}

// PublicGallery returns the approved guest photos, gated by the wedding's
// shared photo password.
func (s *PhotoService) PublicGallery(slug string, password string) ([]models.PhotoResponse, error) {
	wedding, err := s.weddingRepo.GetBySlug(slug)
	if err != nil || !wedding.IsActive {
		return nil, errors.New("wedding not found")
	}
	if wedding.PhotoPassword != password {
		return nil, errors.New("incorrect password")
	}

	photos, err := s.photoRepo.GetApprovedGuestPhotos(wedding.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, s.toPhotoResponse(photo))
	}
	return responses, nil
}

func (s *PhotoService) DeletePhoto(photoID uint, userID uint) error {
	photo, err := s.photoRepo.GetByID(photoID)
	if err != nil {
		return errors.New("photo not found")
	}

	wedding, err := s.weddingRepo.GetByID(photo.WeddingID)
	if err != nil {
		return errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return ErrNotWeddingOwner
	}

	bucket := s.cfg.R2.PhotoBucket
	if photo.PhotoType == models.PhotoTypeCover {
		bucket = s.cfg.R2.ImageBucket
	}
	if err := s.storage.Delete(bucket, photo.FilePath); err != nil {
		return fmt.Errorf("failed to delete from storage: %w", err)
	}

	if err := s.photoRepo.Delete(photoID); err != nil {
		return err
	}

	s.publisher.Publish(realtime.Event{WeddingID: wedding.ID, Table: "photos", Kind: realtime.ChangeDelete})
	return nil
}

func (s *PhotoService) toPhotoResponse(photo models.Photo) models.PhotoResponse {
	bucket := s.cfg.R2.PhotoBucket
	if photo.PhotoType == models.PhotoTypeCover {
		bucket = s.cfg.R2.ImageBucket
	}
	return models.PhotoResponse{
		ID:              photo.ID,
		WeddingID:       photo.WeddingID,
		FileName:        photo.FileName,
		FileSize:        photo.FileSize,
		MimeType:        photo.MimeType,
		UploadedByGuest: photo.UploadedByGuest,
		UploadedAt:      photo.UploadedAt,
		ApprovalStatus:  photo.ApprovalStatus,
		PhotoType:       photo.PhotoType,
		PublicURL:       s.storage.GetPublicURL(bucket, photo.FilePath),
	}
}

// guestPhotoKey builds a collision-resistant object key:
// {weddingID}/{unix ms}-{random}.{ext}
func guestPhotoKey(weddingID uint, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d/%d-%s.%s", weddingID, time.Now().UnixMilli(), suffix, ext)
}

func isValidImageType(contentType string) bool {
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	return validTypes[contentType]
}
