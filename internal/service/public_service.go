package service

import (
	"errors"
	"time"

	"github.com/sefazor/ourwedding-backend/internal/models"
)

// dateLayout is the ISO date format the wedding date is stored in.
const dateLayout = "2006-01-02"

type PublicService struct {
	weddingRepo  WeddingStore
	storyRepo    LoveStoryStore
	photoService *PhotoService
	photoRepo    PhotoStore
}

func NewPublicService(
	weddingRepo WeddingStore,
	storyRepo LoveStoryStore,
	photoRepo PhotoStore,
	photoService *PhotoService,
) *PublicService {
	return &PublicService{
		weddingRepo:  weddingRepo,
		storyRepo:    storyRepo,
		photoRepo:    photoRepo,
		photoService: photoService,
	}
}

// GetPublicPage composes the guest-facing page: wedding details, timeline,
// slideshow of approved photos, countdown and which form to show.
func (s *PublicService) GetPublicPage(slug string, now time.Time) (*models.PublicPageResponse, error) {
	wedding, err := s.weddingRepo.GetBySlug(slug)
	if err != nil || !wedding.IsActive {
		return nil, errors.New("wedding not found")
	}

	timeline, err := s.storyRepo.GetByWeddingID(wedding.ID)
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.GetApprovedGuestPhotos(wedding.ID)
	if err != nil {
		return nil, err
	}
	slideshow := make([]string, 0, len(photos))
	for _, photo := range photos {
		slideshow = append(slideshow, s.photoService.toPhotoResponse(photo).PublicURL)
	}

	return &models.PublicPageResponse{
		Wedding: models.PublicWeddingView{
			Title:         wedding.Title,
			BrideName:     wedding.BrideName,
			GroomName:     wedding.GroomName,
			WeddingDate:   wedding.WeddingDate,
			WeddingTime:   wedding.WeddingTime,
			Venue:         wedding.Venue,
			Address:       wedding.Address,
			Description:   wedding.Description,
			CoverPhotoURL: wedding.CoverPhotoURL,
		},
		Timeline:  timeline,
		Slideshow: slideshow,
		Countdown: ComputeCountdown(now, WeddingTarget(wedding)),
		FormMode:  FormModeFor(wedding.WeddingDate, now),
	}, nil
}

// ResolveWeddingID maps a public slug to the wedding id, for the realtime
// stream subscription.
func (s *PublicService) ResolveWeddingID(slug string) (uint, error) {
	wedding, err := s.weddingRepo.GetBySlug(slug)
	if err != nil || !wedding.IsActive {
		return 0, errors.New("wedding not found")
	}
	return wedding.ID, nil
}

// FormModeFor decides which form the public page renders: the photo upload
// form on the wedding day itself, the RSVP form on every other day (before
// and after). The comparison is plain string equality on the server's local
// ISO date.
func FormModeFor(weddingDate string, now time.Time) models.FormMode {
	if now.Format(dateLayout) == weddingDate {
		return models.FormModePhotoUpload
	}
	return models.FormModeRSVP
}

// WeddingTarget resolves the countdown target from the stored date and
// optional time of day, in server local time.
func WeddingTarget(wedding *models.Wedding) time.Time {
	date, err := time.ParseInLocation(dateLayout, wedding.WeddingDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	if wedding.WeddingTime != "" {
		for _, layout := range []string{"15:04:05", "15:04"} {
			if t, err := time.Parse(layout, wedding.WeddingTime); err == nil {
				return date.Add(time.Duration(t.Hour())*time.Hour +
					time.Duration(t.Minute())*time.Minute +
					time.Duration(t.Second())*time.Second)
			}
		}
	}
	return date
}

// ComputeCountdown derives the countdown widget state from wall-clock time:
// a digit countdown while more than 24h remain, the wedding-day banner inside
// the final 24h and the congratulations banner once the target has passed.
func ComputeCountdown(now, target time.Time) models.Countdown {
	diff := target.Sub(now)

	if diff <= 0 {
		return models.Countdown{State: models.CountdownPassed}
	}
	if diff < 24*time.Hour {
		return models.Countdown{State: models.CountdownWeddingDay}
	}

	totalSeconds := int(diff / time.Second)
	return models.Countdown{
		State:   models.CountdownCounting,
		Days:    totalSeconds / 86400,
		Hours:   (totalSeconds % 86400) / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}
