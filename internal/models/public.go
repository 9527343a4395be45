package models

// FormMode tells the public page which form to render.
type FormMode string

const (
	FormModeRSVP        FormMode = "rsvp"
	FormModePhotoUpload FormMode = "photo_upload"
)

// CountdownState is the display state of the countdown widget.
type CountdownState string

const (
	CountdownCounting   CountdownState = "counting"
	CountdownWeddingDay CountdownState = "wedding_day"
	CountdownPassed     CountdownState = "passed"
)

type Countdown struct {
	State   CountdownState `json:"state"`
	Days    int            `json:"days"`
	Hours   int            `json:"hours"`
	Minutes int            `json:"minutes"`
	Seconds int            `json:"seconds"`
}

// PublicWeddingView is the guest-facing wedding page payload. PhotoPassword
// and owner identifiers are never included.
type PublicWeddingView struct {
	Title         string `json:"title"`
	BrideName     string `json:"bride_name"`
	GroomName     string `json:"groom_name"`
	WeddingDate   string `json:"wedding_date"`
	WeddingTime   string `json:"wedding_time,omitempty"`
	Venue         string `json:"venue,omitempty"`
	Address       string `json:"address,omitempty"`
	Description   string `json:"description,omitempty"`
	CoverPhotoURL string `json:"cover_photo_url,omitempty"`
}

type PublicPageResponse struct {
	Wedding   PublicWeddingView `json:"wedding"`
	Timeline  []LoveStoryEvent  `json:"timeline"`
	Slideshow []string          `json:"slideshow"` // public URLs of approved guest photos
	Countdown Countdown         `json:"countdown"`
	FormMode  FormMode          `json:"form_mode"`
}
