package models

import (
	"time"
)

type Wedding struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	Title          string    `json:"title" gorm:"not null"`
	BrideName      string    `json:"bride_name"`
	GroomName      string    `json:"groom_name"`
	WeddingDate    string    `json:"wedding_date" gorm:"type:date;not null"` // ISO date, compared as a string
	WeddingTime    string    `json:"wedding_time"`
	Venue          string    `json:"venue"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	PhotoPassword  string    `json:"-" gorm:"not null"` // plaintext shared secret handed to guests
	PublicURLSlug  string    `json:"public_url_slug" gorm:"unique;not null"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CoverPhotoURL  string    `json:"cover_photo_url"`
	CoverPhotoPath string    `json:"cover_photo_path"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WeddingRequest struct {
	Title         string `json:"title" validate:"required"`
	BrideName     string `json:"bride_name" validate:"required"`
	GroomName     string `json:"groom_name" validate:"required"`
	WeddingDate   string `json:"wedding_date" validate:"required,datetime=2006-01-02"`
	WeddingTime   string `json:"wedding_time"`
	Venue         string `json:"venue"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	PhotoPassword string `json:"photo_password" validate:"required,min=4"`
}

type UpdateWeddingRequest struct {
	Title         *string `json:"title"`
	BrideName     *string `json:"bride_name"`
	GroomName     *string `json:"groom_name"`
	WeddingDate   *string `json:"wedding_date" validate:"omitempty,datetime=2006-01-02"`
	WeddingTime   *string `json:"wedding_time"`
	Venue         *string `json:"venue"`
	Address       *string `json:"address"`
	Description   *string `json:"description"`
	PhotoPassword *string `json:"photo_password" validate:"omitempty,min=4"`
	IsActive      *bool   `json:"is_active"`
}

type GalleryPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}
