package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/qrcode"
	"github.com/sefazor/ourwedding-backend/pkg/realtime"
	"github.com/valyala/fasthttp"
)

type PublicHandler struct {
	publicService *service.PublicService
	hub           *realtime.Hub
	qr            *qrcode.QRService
}

func NewPublicHandler(publicService *service.PublicService, hub *realtime.Hub, qr *qrcode.QRService) *PublicHandler {
	return &PublicHandler{
		publicService: publicService,
		hub:           hub,
		qr:            qr,
	}
}

func (h *PublicHandler) GetPublicPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := h.publicService.GetPublicPage(slug, time.Now())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Wedding not found"))
	}

	return c.JSON(models.SuccessResponse(page, "Wedding page retrieved successfully"))
}

// GetQR serves the share QR code for a public page, so guests can pass the
// link along without the couple's dashboard.
func (h *PublicHandler) GetQR(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if _, err := h.publicService.ResolveWeddingID(slug); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Wedding not found"))
	}

	size := c.QueryInt("size", 512)
	png, err := h.qr.GenerateQRCode(slug, size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to generate QR code"))
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// StreamChanges is an SSE feed of photo changes for one wedding. Events carry
// no payload; clients re-fetch the gallery when one arrives.
func (h *PublicHandler) StreamChanges(c *fiber.Ctx) error {
	slug := c.Params("slug")

	weddingID, err := h.publicService.ResolveWeddingID(slug)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Wedding not found"))
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		events, cancel := h.hub.Subscribe(weddingID)
		defer cancel()

		keepalive := time.NewTicker(30 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case evt, ok := <-events:
				if !ok {
					return
				}
				payload, err := json.Marshal(evt)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepalive.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}
