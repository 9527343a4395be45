package service

import (
	"errors"
	"mime/multipart"

	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/realtime"
	"go.uber.org/zap"
)

const maxRSVPPhotos = 5

type RSVPService struct {
	guestRepo    GuestStore
	photoRepo    PhotoStore
	weddingRepo  WeddingStore
	photoService *PhotoService
	publisher    realtime.Publisher
	logger       *zap.Logger
}

func NewRSVPService(
	guestRepo GuestStore,
	photoRepo PhotoStore,
	weddingRepo WeddingStore,
	photoService *PhotoService,
	publisher realtime.Publisher,
	logger *zap.Logger,
) *RSVPService {
	return &RSVPService{
		guestRepo:    guestRepo,
		photoRepo:    photoRepo,
		weddingRepo:  weddingRepo,
		photoService: photoService,
		publisher:    publisher,
		logger:       logger,
	}
}

// SubmitRSVP records a guest's response. The guest row and plus-one rows are
// required; attached photos are each best effort. There is no transaction
// across the steps: a failure after the guest insert leaves the guest row in
// place.
func (s *RSVPService) SubmitRSVP(slug string, req models.RSVPRequest, photos []*multipart.FileHeader) (*models.Guest, error) {
	wedding, err := s.weddingRepo.GetBySlug(slug)
	if err != nil || !wedding.IsActive {
		return nil, errors.New("wedding not found")
	}

	if len(photos) > maxRSVPPhotos {
		return nil, errors.New("too many photos")
	}

	guest := &models.Guest{
		WeddingID:           wedding.ID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		PlusOneCount:        len(req.PlusOnes),
		DietaryRestrictions: req.DietaryRestrictions,
		SongRequests:        req.SongRequests,
		RSVPStatus:          models.RSVPPending, // the owner decides later, whatever the guest intends
		AttendanceIntention: req.AttendanceIntention,
	}
	if err := s.guestRepo.Create(guest); err != nil {
		return nil, errors.New("failed to submit RSVP")
	}

	for _, entry := range req.PlusOnes {
		plusOne := &models.PlusOne{
			GuestID:             guest.ID,
			Name:                entry.Name,
			DietaryRestrictions: entry.DietaryRestrictions,
			SongRequests:        entry.SongRequests,
		}
		if err := s.guestRepo.CreatePlusOne(plusOne); err != nil {
			return nil, errors.New("failed to save plus-one")
		}
		guest.PlusOnes = append(guest.PlusOnes, *plusOne)
	}

	// Photos are only offered alongside an accept.
	if req.AttendanceIntention == models.IntentionAccepted {
		uploaded := 0
		for _, file := range photos {
			if _, err := s.photoService.storeGuestPhoto(wedding.ID, guest.FullName(), file); err != nil {
				// Each photo is an independent unit of work: log and move on.
				s.logger.Warn("rsvp photo upload skipped",
					zap.Uint("wedding_id", wedding.ID),
					zap.String("file", file.Filename),
					zap.Error(err))
				continue
			}
			uploaded++
		}
		if uploaded > 0 {
			s.publisher.Publish(realtime.Event{WeddingID: wedding.ID, Table: "photos", Kind: realtime.ChangeInsert})
		}
	}

	return guest, nil
}

// ListGuests groups a wedding's guests by the owner's RSVP decision.
func (s *RSVPService) ListGuests(weddingID uint, userID uint) (*models.GuestListResponse, error) {
	wedding, err := s.weddingRepo.GetByID(weddingID)
	if err != nil {
		return nil, errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return nil, ErrNotWeddingOwner
	}

	guests, err := s.guestRepo.GetByWeddingID(weddingID)
	if err != nil {
		return nil, err
	}

	resp := &models.GuestListResponse{
		Pending:  []models.Guest{},
		Accepted: []models.Guest{},
		Declined: []models.Guest{},
	}
	for _, guest := range guests {
		switch guest.RSVPStatus {
		case models.RSVPAccepted:
			resp.Accepted = append(resp.Accepted, guest)
		case models.RSVPDeclined:
			resp.Declined = append(resp.Declined, guest)
		default:
			resp.Pending = append(resp.Pending, guest)
		}
	}
	resp.Counts.Pending = len(resp.Pending)
	resp.Counts.Accepted = len(resp.Accepted)
	resp.Counts.Declined = len(resp.Declined)
	resp.Counts.Total = len(guests)
	return resp, nil
}

// ApproveGuest accepts an RSVP and then auto-approves the guest's pending
// photos for the same wedding, matched case-insensitively on the free-text
// uploader name. The cascade never fails the approval.
func (s *RSVPService) ApproveGuest(guestID uint, userID uint) (*models.Guest, error) {
	guest, wedding, err := s.ownedGuest(guestID, userID)
	if err != nil {
		return nil, err
	}

	// Idempotent: approving an accepted guest changes nothing, cascade included.
	if guest.RSVPStatus == models.RSVPAccepted {
		return guest, nil
	}

	if err := s.guestRepo.UpdateStatus(guest.ID, models.RSVPAccepted); err != nil {
		return nil, err
	}
	guest.RSVPStatus = models.RSVPAccepted

	approved, err := s.photoRepo.ApproveMatchingPending(wedding.ID, guest.FullName())
	if err != nil {
		s.logger.Error("photo auto-approval cascade failed",
			zap.Uint("wedding_id", wedding.ID),
			zap.Uint("guest_id", guest.ID),
			zap.Error(err))
	} else if approved > 0 {
		s.logger.Info("auto-approved guest photos",
			zap.Uint("wedding_id", wedding.ID),
			zap.String("guest", guest.FullName()),
			zap.Int64("count", approved))
		s.publisher.Publish(realtime.Event{WeddingID: wedding.ID, Table: "photos", Kind: realtime.ChangeUpdate})
	}

	return guest, nil
}

// DeclineGuest declines an RSVP. No side effects on photos.
func (s *RSVPService) DeclineGuest(guestID uint, userID uint) (*models.Guest, error) {
	guest, _, err := s.ownedGuest(guestID, userID)
	if err != nil {
		return nil, err
	}

	if guest.RSVPStatus == models.RSVPDeclined {
		return guest, nil
	}

	if err := s.guestRepo.UpdateStatus(guest.ID, models.RSVPDeclined); err != nil {
		return nil, err
	}
	guest.RSVPStatus = models.RSVPDeclined
	return guest, nil
}

// DeleteGuest removes the guest row. Plus-ones are cascade-deleted by the
// store, not by this code.
func (s *RSVPService) DeleteGuest(guestID uint, userID uint) error {
	guest, _, err := s.ownedGuest(guestID, userID)
	if err != nil {
		return err
	}
	return s.guestRepo.Delete(guest.ID)
}

func (s *RSVPService) ownedGuest(guestID uint, userID uint) (*models.Guest, *models.Wedding, error) {
	guest, err := s.guestRepo.GetByID(guestID)
	if err != nil {
		return nil, nil, errors.New("guest not found")
	}

	wedding, err := s.weddingRepo.GetByID(guest.WeddingID)
	if err != nil {
		return nil, nil, errors.New("wedding not found")
	}
	if wedding.UserID != userID {
		return nil, nil, ErrNotWeddingOwner
	}
	return guest, wedding, nil
}
