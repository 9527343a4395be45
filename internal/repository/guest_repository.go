package repository

import (
	"github.com/sefazor/ourwedding-backend/internal/models"
	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(guest *models.Guest) error {
	return r.db.Create(guest).Error
}

func (r *GuestRepository) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.Preload("PlusOnes").First(&guest, id).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) GetByWeddingID(weddingID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.Preload("PlusOnes").
		Where("wedding_id = ?", weddingID).
		Order("created_at DESC").
		Find(&guests).Error
	return guests, err
}

func (r *GuestRepository) UpdateStatus(id uint, status models.RSVPStatus) error {
	return r.db.Model(&models.Guest{}).Where("id = ?", id).Update("rsvp_status", status).Error
}

// Delete removes the guest row only. Plus-one rows go with it through the
// store-level ON DELETE CASCADE.
func (r *GuestRepository) Delete(id uint) error {
	return r.db.Delete(&models.Guest{}, id).Error
}

func (r *GuestRepository) CreatePlusOne(plusOne *models.PlusOne) error {
	return r.db.Create(plusOne).Error
}
