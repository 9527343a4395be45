package repository

import (
	"github.com/sefazor/ourwedding-backend/internal/models"
	"gorm.io/gorm"
)

type WeddingRepository struct {
	db *gorm.DB
}

func NewWeddingRepository(db *gorm.DB) *WeddingRepository {
	return &WeddingRepository{db: db}
}

func (r *WeddingRepository) Create(wedding *models.Wedding) (*models.Wedding, error) {
	result := r.db.Create(wedding)
	if result.Error != nil {
		return nil, result.Error
	}
	return wedding, nil
}

func (r *WeddingRepository) GetByID(id uint) (*models.Wedding, error) {
	var wedding models.Wedding
	err := r.db.First(&wedding, id).Error
	if err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *WeddingRepository) GetBySlug(slug string) (*models.Wedding, error) {
	var wedding models.Wedding
	err := r.db.Where("public_url_slug = ?", slug).First(&wedding).Error
	if err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *WeddingRepository) GetUserWeddings(userID uint) ([]models.Wedding, error) {
	var weddings []models.Wedding
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&weddings).Error
	return weddings, err
}

func (r *WeddingRepository) Update(wedding *models.Wedding) error {
	return r.db.Save(wedding).Error
}

func (r *WeddingRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Wedding{}).Where("public_url_slug = ?", slug).Count(&count).Error
	return count > 0, err
}
