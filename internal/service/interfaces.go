package service

import (
	"time"

	"github.com/sefazor/ourwedding-backend/internal/models"
)

// Store interfaces the services depend on. The gorm repositories in
// internal/repository satisfy them; tests substitute in-memory fakes.

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

type LoginCodeStore interface {
	Create(code *models.LoginCode) error
	GetActiveByEmail(email string, now time.Time) ([]models.LoginCode, error)
	DeleteForEmail(email string) error
}

type WeddingStore interface {
	Create(wedding *models.Wedding) (*models.Wedding, error)
	GetByID(id uint) (*models.Wedding, error)
	GetBySlug(slug string) (*models.Wedding, error)
	GetUserWeddings(userID uint) ([]models.Wedding, error)
	Update(wedding *models.Wedding) error
	SlugExists(slug string) (bool, error)
}

type GuestStore interface {
	Create(guest *models.Guest) error
	GetByID(id uint) (*models.Guest, error)
	GetByWeddingID(weddingID uint) ([]models.Guest, error)
	UpdateStatus(id uint, status models.RSVPStatus) error
	Delete(id uint) error
	CreatePlusOne(plusOne *models.PlusOne) error
}

type PhotoStore interface {
	Create(photo *models.Photo) error
	GetByID(id uint) (*models.Photo, error)
	GetGuestPhotosByWeddingID(weddingID uint) ([]models.Photo, error)
	GetApprovedGuestPhotos(weddingID uint) ([]models.Photo, error)
	UpdateApprovalStatus(id uint, status models.ApprovalStatus) error
	ApproveMatchingPending(weddingID uint, uploaderName string) (int64, error)
	Delete(id uint) error
}

type LoveStoryStore interface {
	Create(event *models.LoveStoryEvent) error
	GetByID(id uint) (*models.LoveStoryEvent, error)
	GetByWeddingID(weddingID uint) ([]models.LoveStoryEvent, error)
	Update(event *models.LoveStoryEvent) error
	UpdateOrderIndex(id uint, orderIndex int) error
	Delete(id uint) error
	CountByWeddingID(weddingID uint) (int64, error)
}

// Mailer is the slice of the email service auth needs.
type Mailer interface {
	SendLoginCodeEmail(email, code string) error
	SendWelcomeEmail(email, fullName string) error
}
