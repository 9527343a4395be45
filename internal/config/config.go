package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	PhotoBucket     string // guest / RSVP photos
	ImageBucket     string // wedding cover images
	PublicURL       string
}

type Config struct {
	R2          R2Config
	FrontendURL string
	PublicBase  string // base URL for guest-facing pages, used by QR codes
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.PhotoBucket = os.Getenv("R2_PHOTO_BUCKET")
	cfg.R2.ImageBucket = os.Getenv("R2_IMAGE_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	if cfg.R2.PhotoBucket == "" {
		cfg.R2.PhotoBucket = "wedding-photos"
	}
	if cfg.R2.ImageBucket == "" {
		cfg.R2.ImageBucket = "wedding-images"
	}

	cfg.FrontendURL = os.Getenv("FRONTEND_URL")
	cfg.PublicBase = cfg.FrontendURL + "/w/"

	return cfg
}
