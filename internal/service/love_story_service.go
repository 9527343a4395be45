package service

import (
	"errors"

	"github.com/sefazor/ourwedding-backend/internal/models"
)

type LoveStoryService struct {
	storyRepo   LoveStoryStore
	weddingRepo WeddingStore
}

func NewLoveStoryService(storyRepo LoveStoryStore, weddingRepo WeddingStore) *LoveStoryService {
	return &LoveStoryService{
		storyRepo:   storyRepo,
		weddingRepo: weddingRepo,
	}
}

func (s *LoveStoryService) ListEvents(weddingID uint, userID uint) ([]models.LoveStoryEvent, error) {
	if _, err := s.ownedWedding(weddingID, userID); err != nil {
		return nil, err
	}
	return s.storyRepo.GetByWeddingID(weddingID)
}

// CreateEvent appends the entry to the end of the timeline.
func (s *LoveStoryService) CreateEvent(weddingID uint, userID uint, req models.LoveStoryEventRequest) (*models.LoveStoryEvent, error) {
	if _, err := s.ownedWedding(weddingID, userID); err != nil {
		return nil, err
	}

	count, err := s.storyRepo.CountByWeddingID(weddingID)
	if err != nil {
		return nil, err
	}

	event := &models.LoveStoryEvent{
		WeddingID:   weddingID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Icon:        req.Icon,
		OrderIndex:  int(count),
	}
	if err := s.storyRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *LoveStoryService) UpdateEvent(eventID uint, userID uint, req models.LoveStoryEventRequest) (*models.LoveStoryEvent, error) {
	event, err := s.ownedEvent(eventID, userID)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.EventDate = req.EventDate
	event.Icon = req.Icon

	if err := s.storyRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *LoveStoryService) DeleteEvent(eventID uint, userID uint) error {
	event, err := s.ownedEvent(eventID, userID)
	if err != nil {
		return err
	}
	return s.storyRepo.Delete(event.ID)
}

// MoveEvent swaps order_index with the neighbor in the given direction. Only
// the two entries involved change; moving past either end is a no-op.
func (s *LoveStoryService) MoveEvent(eventID uint, userID uint, direction string) error {
	event, err := s.ownedEvent(eventID, userID)
	if err != nil {
		return err
	}

	events, err := s.storyRepo.GetByWeddingID(event.WeddingID)
	if err != nil {
		return err
	}

	current := -1
	for i, e := range events {
		if e.ID == event.ID {
			current = i
			break
		}
	}
	if current == -1 {
		return errors.New("event not found")
	}

	neighbor := current - 1
	if direction == "down" {
		neighbor = current + 1
	}
	if neighbor < 0 || neighbor >= len(events) {
		return nil
	}

	if err := s.storyRepo.UpdateOrderIndex(events[current].ID, events[neighbor].OrderIndex); err != nil {
		return err
	}
	return s.storyRepo.UpdateOrderIndex(events[neighbor].ID, events[current].OrderIndex)
}

func (s *LoveStoryService) ownedWedding(weddingID uint, userID uint) (*models.Wedding, error) {
	wedding, err := s.weddingRepo.GetByID(weddingID)
	if err != nil {
		return nil, errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return nil, ErrNotWeddingOwner
	}
	return wedding, nil
}

func (s *LoveStoryService) ownedEvent(eventID uint, userID uint) (*models.LoveStoryEvent, error) {
	event, err := s.storyRepo.GetByID(eventID)
	if err != nil {
		return nil, errors.New("event not found")
	}
	if _, err := s.ownedWedding(event.WeddingID, userID); err != nil {
		return nil, err
	}
	return event, nil
}
