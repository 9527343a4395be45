package models

import (
	"time"
)

// LoveStoryEvent is one entry of the couple's relationship timeline.
// EventDate is a display label ("Summer 2019"), not a real date.
type LoveStoryEvent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WeddingID   uint      `json:"wedding_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LoveStoryEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	Icon        string `json:"icon"`
}

type MoveLoveStoryEventRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}
