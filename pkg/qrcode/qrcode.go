package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders share QR codes for public wedding pages.
type QRService struct {
	baseURL string // e.g. "https://ourwedding.co/w/"
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateQRCode returns a PNG QR code pointing at the public page for slug.
func (s *QRService) GenerateQRCode(slug string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", s.baseURL, slug)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
