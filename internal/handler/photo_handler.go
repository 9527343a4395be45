package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	validator    *utils.Validator
}

func NewPhotoHandler(photoService *service.PhotoService, validator *utils.Validator) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

// UploadGuestPhoto is the public wedding-day upload endpoint.
func (h *PhotoHandler) UploadGuestPhoto(c *fiber.Ctx) error {
	slug := c.Params("slug")
	uploaderName := c.FormValue("uploaded_by")
	if uploaderName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Uploader name is required"))
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Photo file is required"))
	}

	photo, err := h.photoService.UploadGuestPhoto(slug, uploaderName, file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(photo, "Photo uploaded successfully"))
}

func (h *PhotoHandler) ListForModeration(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	photos, err := h.photoService.ListForModeration(weddingID, userID)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}

func (h *PhotoHandler) SetApprovalStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	var req models.SetApprovalStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	photo, err := h.photoService.SetApprovalStatus(photoID, userID, req.Status)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(photo, "Photo status updated successfully"))
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	if err := h.photoService.DeletePhoto(photoID, userID); err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Photo deleted successfully"))
}

// PublicGallery lists approved photos for guests who know the wedding's
// shared photo password.
func (h *PhotoHandler) PublicGallery(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var req models.GalleryPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	photos, err := h.photoService.PublicGallery(slug, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved successfully"))
}
