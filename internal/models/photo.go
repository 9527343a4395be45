package models

import (
	"time"
)

type PhotoType string

const (
	PhotoTypeCover PhotoType = "cover"
	PhotoTypeGuest PhotoType = "guest"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Photo struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	WeddingID       uint           `json:"wedding_id" gorm:"not null;index"`
	FileName        string         `json:"file_name" gorm:"not null"`
	FilePath        string         `json:"file_path" gorm:"not null"` // object storage key
	FileSize        int64          `json:"file_size"`
	MimeType        string         `json:"mime_type"`
	UploadedByGuest string         `json:"uploaded_by_guest"` // free text, matched by name on RSVP approval
	UploadedAt      time.Time      `json:"uploaded_at"`
	ApprovalStatus  ApprovalStatus `json:"approval_status" gorm:"default:'pending'"`
	PhotoType       PhotoType      `json:"photo_type" gorm:"default:'guest'"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type PhotoResponse struct {
	ID              uint           `json:"id"`
	WeddingID       uint           `json:"wedding_id"`
	FileName        string         `json:"file_name"`
	FileSize        int64          `json:"file_size"`
	MimeType        string         `json:"mime_type"`
	UploadedByGuest string         `json:"uploaded_by_guest,omitempty"`
	UploadedAt      time.Time      `json:"uploaded_at"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	PhotoType       PhotoType      `json:"photo_type"`
	PublicURL       string         `json:"public_url"`
}

type SetApprovalStatusRequest struct {
	Status ApprovalStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}

// PhotoModerationResponse groups a wedding's guest photos by approval status.
// Cover photos are excluded.
type PhotoModerationResponse struct {
	Pending  []PhotoResponse `json:"pending"`
	Approved []PhotoResponse `json:"approved"`
	Rejected []PhotoResponse `json:"rejected"`
}
