package repository

import (
	"time"

	"github.com/sefazor/ourwedding-backend/internal/models"
	"gorm.io/gorm"
)

type LoginCodeRepository struct {
	db *gorm.DB
}

func NewLoginCodeRepository(db *gorm.DB) *LoginCodeRepository {
	return &LoginCodeRepository{db: db}
}

func (r *LoginCodeRepository) Create(code *models.LoginCode) error {
	return r.db.Create(code).Error
}

// GetActiveByEmail returns the unexpired codes for an email, newest first.
// Codes are bcrypt-hashed so the caller compares them one by one.
func (r *LoginCodeRepository) GetActiveByEmail(email string, now time.Time) ([]models.LoginCode, error) {
	var codes []models.LoginCode
	err := r.db.Where("email = ? AND expires_at > ?", email, now).
		Order("created_at DESC").
		Find(&codes).Error
	return codes, err
}

// DeleteForEmail removes every code issued to an email. Called after a
// successful verification so codes are single use, and before issuing a new
// code so only the latest one is valid.
func (r *LoginCodeRepository) DeleteForEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.LoginCode{}).Error
}

func (r *LoginCodeRepository) DeleteExpired(now time.Time) error {
	return r.db.Where("expires_at <= ?", now).Delete(&models.LoginCode{}).Error
}
