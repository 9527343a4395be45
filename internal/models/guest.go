package models

import (
	"strings"
	"time"
)

// RSVPStatus is the owner's decision on a guest's RSVP.
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

// AttendanceIntention is the guest's own yes/no, independent of RSVPStatus.
type AttendanceIntention string

const (
	IntentionAccepted AttendanceIntention = "accepted"
	IntentionDeclined AttendanceIntention = "declined"
)

type Guest struct {
	ID                  uint                `json:"id" gorm:"primaryKey"`
	WeddingID           uint                `json:"wedding_id" gorm:"not null;index"`
	FirstName           string              `json:"first_name" gorm:"not null"`
	LastName            string              `json:"last_name" gorm:"not null"`
	Email               string              `json:"email"`
	Phone               string              `json:"phone"`
	PlusOneCount        int                 `json:"plus_one_count" gorm:"default:0"`
	DietaryRestrictions string              `json:"dietary_restrictions"`
	SongRequests        string              `json:"song_requests"`
	RSVPStatus          RSVPStatus          `json:"rsvp_status" gorm:"default:'pending'"`
	AttendanceIntention AttendanceIntention `json:"attendance_intention" gorm:"not null"`
	PlusOnes            []PlusOne           `json:"plus_ones,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// FullName is the display name guests also type when uploading photos.
// It is the key for the photo auto-approval match.
func (g *Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

type PlusOne struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	GuestID             uint      `json:"guest_id" gorm:"not null;index"`
	Name                string    `json:"name" gorm:"not null"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	SongRequests        string    `json:"song_requests"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PlusOneEntry struct {
	Name                string `json:"name" validate:"required"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	SongRequests        string `json:"song_requests"`
}

type RSVPRequest struct {
	FirstName           string              `json:"first_name" validate:"required"`
	LastName            string              `json:"last_name" validate:"required"`
	Email               string              `json:"email" validate:"omitempty,email"`
	Phone               string              `json:"phone"`
	AttendanceIntention AttendanceIntention `json:"attendance_intention" validate:"required,oneof=accepted declined"`
	DietaryRestrictions string              `json:"dietary_restrictions"`
	SongRequests        string              `json:"song_requests"`
	PlusOnes            []PlusOneEntry      `json:"plus_ones" validate:"dive"`
}

// GuestListResponse groups a wedding's guests by the owner's RSVP decision.
type GuestListResponse struct {
	Pending  []Guest `json:"pending"`
	Accepted []Guest `json:"accepted"`
	Declined []Guest `json:"declined"`
	Counts   struct {
		Pending  int `json:"pending"`
		Accepted int `json:"accepted"`
		Declined int `json:"declined"`
		Total    int `json:"total"`
	} `json:"counts"`
}
