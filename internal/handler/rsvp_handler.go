package handler

import (
	"encoding/json"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
)

type RSVPHandler struct {
	rsvpService *service.RSVPService
	validator   *utils.Validator
}

func NewRSVPHandler(rsvpService *service.RSVPService, validator *utils.Validator) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
		validator:   validator,
	}
}

// SubmitRSVP is the public intake endpoint. The request is multipart: the
// "data" field carries the RSVP JSON, "photos" the optional image files.
func (h *RSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var req models.RSVPRequest
	if err := json.Unmarshal([]byte(c.FormValue("data")), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var photos []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		photos = form.File["photos"]
	}

	guest, err := h.rsvpService.SubmitRSVP(slug, req, photos)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(guest, "RSVP submitted successfully"))
}

func (h *RSVPHandler) ListGuests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	guests, err := h.rsvpService.ListGuests(weddingID, userID)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(guests, "Guests retrieved successfully"))
}

func (h *RSVPHandler) ApproveGuest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	guestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid guest ID"))
	}

	guest, err := h.rsvpService.ApproveGuest(guestID, userID)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(guest, "Guest approved successfully"))
}

func (h *RSVPHandler) DeclineGuest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	guestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid guest ID"))
	}

	guest, err := h.rsvpService.DeclineGuest(guestID, userID)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(guest, "Guest declined successfully"))
}

func (h *RSVPHandler) DeleteGuest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	guestID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid guest ID"))
	}

	if err := h.rsvpService.DeleteGuest(guestID, userID); err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Guest deleted successfully"))
}
