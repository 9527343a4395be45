package repository

import (
	"github.com/sefazor/ourwedding-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetGuestPhotosByWeddingID lists guest-submitted photos for moderation.
// Cover photos never show up here.
func (r *PhotoRepository) GetGuestPhotosByWeddingID(weddingID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("wedding_id = ? AND photo_type = ?", weddingID, models.PhotoTypeGuest).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) GetApprovedGuestPhotos(weddingID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("wedding_id = ? AND photo_type = ? AND approval_status = ?",
		weddingID, models.PhotoTypeGuest, models.ApprovalApproved).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) UpdateApprovalStatus(id uint, status models.ApprovalStatus) error {
	return r.db.Model(&models.Photo{}).Where("id = ?", id).Update("approval_status", status).Error
}

// ApproveMatchingPending bulk-approves this wedding's pending photos whose
// uploader name matches case-insensitively. The uploader name is free text,
// so this is a best-effort match, not a foreign key.
func (r *PhotoRepository) ApproveMatchingPending(weddingID uint, uploaderName string) (int64, error) {
	result := r.db.Model(&models.Photo{}).
		Where("wedding_id = ? AND approval_status = ? AND LOWER(uploaded_by_guest) = LOWER(?)",
			weddingID, models.ApprovalPending, uploaderName).
		Update("approval_status", models.ApprovalApproved)
	return result.RowsAffected, result.Error
}

func (r *PhotoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Photo{}, id).Error
}

func (r *PhotoRepository) CountByWeddingID(weddingID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Photo{}).Where("wedding_id = ?", weddingID).Count(&count).Error
	return count, err
}
