package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/qrcode"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
)

var ErrNotWeddingOwner = errors.New("unauthorized")

type WeddingService struct {
	weddingRepo WeddingStore
	photoRepo   PhotoStore
	storage     storage.ObjectStorage
	qr          *qrcode.QRService
	cfg         *config.Config
}

func NewWeddingService(
	weddingRepo WeddingStore,
	photoRepo PhotoStore,
	objectStorage storage.ObjectStorage,
	qr *qrcode.QRService,
	cfg *config.Config,
) *WeddingService {
	return &WeddingService{
		weddingRepo: weddingRepo,
		photoRepo:   photoRepo,
		storage:     objectStorage,
		qr:          qr,
		cfg:         cfg,
	}
}

func (s *WeddingService) CreateWedding(userID uint, req models.WeddingRequest) (*models.Wedding, error) {
	slug, err := s.uniqueSlug(req.BrideName, req.GroomName, req.Title)
	if err != nil {
		return nil, err
	}

	wedding := &models.Wedding{
		UserID:        userID,
		Title:         req.Title,
		BrideName:     req.BrideName,
		GroomName:     req.GroomName,
		WeddingDate:   req.WeddingDate,
		WeddingTime:   req.WeddingTime,
		Venue:         req.Venue,
		Address:       req.Address,
		Description:   req.Description,
		PhotoPassword: req.PhotoPassword,
		PublicURLSlug: slug,
		IsActive:      true,
	}

	return s.weddingRepo.Create(wedding)
}

func (s *WeddingService) GetWedding(weddingID uint, userID uint) (*models.Wedding, error) {
	wedding, err := s.weddingRepo.GetByID(weddingID)
	if err != nil {
		return nil, errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return nil, ErrNotWeddingOwner
	}
	return wedding, nil
}

func (s *WeddingService) GetUserWeddings(userID uint) ([]models.Wedding, error) {
	return s.weddingRepo.GetUserWeddings(userID)
}

func (s *WeddingService) UpdateWedding(weddingID uint, userID uint, req models.UpdateWeddingRequest) (*models.Wedding, error) {
	wedding, err := s.GetWedding(weddingID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		wedding.Title = *req.Title
	}
	if req.BrideName != nil {
		wedding.BrideName = *req.BrideName
	}
	if req.GroomName != nil {
		wedding.GroomName = *req.GroomName
	}
	if req.WeddingDate != nil {
		wedding.WeddingDate = *req.WeddingDate
	}
	if req.WeddingTime != nil {
		wedding.WeddingTime = *req.WeddingTime
	}
	if req.Venue != nil {
		wedding.Venue = *req.Venue
	}
	if req.Address != nil {
		wedding.Address = *req.Address
	}
	if req.Description != nil {
		wedding.Description = *req.Description
	}
	if req.PhotoPassword != nil {
		wedding.PhotoPassword = *req.PhotoPassword
	}
	if req.IsActive != nil {
		wedding.IsActive = *req.IsActive
	}

	if err := s.weddingRepo.Update(wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

// DeactivateWedding hides the public page. Wedding rows are never hard-deleted.
func (s *WeddingService) DeactivateWedding(weddingID uint, userID uint) error {
	wedding, err := s.GetWedding(weddingID, userID)
	if err != nil {
		return err
	}

	wedding.IsActive = false
	return s.weddingRepo.Update(wedding)
}

// UploadCoverPhoto stores the hero image and records it as an approved cover
// photo row. Replacing a cover leaves the previous object in storage.
func (s *WeddingService) UploadCoverPhoto(weddingID uint, userID uint, file *multipart.FileHeader) (*models.Wedding, error) {
	wedding, err := s.GetWedding(weddingID, userID)
	if err != nil {
		return nil, err
	}

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

	ext := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
	key := fmt.Sprintf("covers/wedding-cover-%d.%s", time.Now().UnixMilli(), ext)

	if err := s.storage.Upload(s.cfg.R2.ImageBucket, key, src); err != nil {
		return nil, fmt.Errorf("failed to upload cover photo: %w", err)
	}

	photo := &models.Photo{
		WeddingID:      wedding.ID,
		FileName:       file.Filename,
		FilePath:       key,
		FileSize:       file.Size,
		MimeType:       file.Header.Get("Content-Type"),
		UploadedAt:     time.Now(),
		ApprovalStatus: models.ApprovalApproved, // covers are owner-uploaded, never moderated
		PhotoType:      models.PhotoTypeCover,
	}
	if err := s.photoRepo.Create(photo); err != nil {
		_ = s.storage.Delete(s.cfg.R2.ImageBucket, key)
		return nil, err
	}

	wedding.CoverPhotoPath = key
	wedding.CoverPhotoURL = s.storage.GetPublicURL(s.cfg.R2.ImageBucket, key)
	if err := s.weddingRepo.Update(wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

// WeddingQR renders a printable QR code for the public page.
func (s *WeddingService) WeddingQR(weddingID uint, userID uint, size int) ([]byte, error) {
	wedding, err := s.GetWedding(weddingID, userID)
	if err != nil {
		return nil, err
	}
	return s.qr.GenerateQRCode(wedding.PublicURLSlug, size)
}

func (s *WeddingService) uniqueSlug(brideName, groomName, title string) (string, error) {
	base := utils.Slugify(brideName + " " + groomName)
	if base == "" {
		base = utils.Slugify(title)
	}
	if base == "" {
		base = strings.ToLower(utils.GenerateRandomString(10))
	}

	slug := base
	for {
		exists, err := s.weddingRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + strings.ToLower(utils.GenerateRandomString(6))
	}
}
