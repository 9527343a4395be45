package repository

import (
	"github.com/sefazor/ourwedding-backend/internal/models"
	"gorm.io/gorm"
)

type LoveStoryRepository struct {
	db *gorm.DB
}

func NewLoveStoryRepository(db *gorm.DB) *LoveStoryRepository {
	return &LoveStoryRepository{db: db}
}

func (r *LoveStoryRepository) Create(event *models.LoveStoryEvent) error {
	return r.db.Create(event).Error
}

func (r *LoveStoryRepository) GetByID(id uint) (*models.LoveStoryEvent, error) {
	var event models.LoveStoryEvent
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *LoveStoryRepository) GetByWeddingID(weddingID uint) ([]models.LoveStoryEvent, error) {
	var events []models.LoveStoryEvent
	err := r.db.Where("wedding_id = ?", weddingID).
		Order("order_index ASC").
		Find(&events).Error
	return events, err
}

func (r *LoveStoryRepository) Update(event *models.LoveStoryEvent) error {
	return r.db.Save(event).Error
}

func (r *LoveStoryRepository) UpdateOrderIndex(id uint, orderIndex int) error {
	return r.db.Model(&models.LoveStoryEvent{}).Where("id = ?", id).Update("order_index", orderIndex).Error
}

func (r *LoveStoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.LoveStoryEvent{}, id).Error
}

func (r *LoveStoryRepository) CountByWeddingID(weddingID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LoveStoryEvent{}).Where("wedding_id = ?", weddingID).Count(&count).Error
	return count, err
}
