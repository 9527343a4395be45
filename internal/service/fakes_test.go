package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/realtime"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("record not found")

type fakeWeddingStore struct {
	weddings map[uint]*models.Wedding
	nextID   uint
}

func newFakeWeddingStore() *fakeWeddingStore {
	return &fakeWeddingStore{weddings: make(map[uint]*models.Wedding)}
}

func (s *fakeWeddingStore) Create(wedding *models.Wedding) (*models.Wedding, error) {
	s.nextID++
	wedding.ID = s.nextID
	copied := *wedding
	s.weddings[wedding.ID] = &copied
	return wedding, nil
}

func (s *fakeWeddingStore) GetByID(id uint) (*models.Wedding, error) {
	wedding, ok := s.weddings[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *wedding
	return &copied, nil
}

func (s *fakeWeddingStore) GetBySlug(slug string) (*models.Wedding, error) {
	for _, wedding := range s.weddings {
		if wedding.PublicURLSlug == slug {
			copied := *wedding
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (s *fakeWeddingStore) GetUserWeddings(userID uint) ([]models.Wedding, error) {
	var result []models.Wedding
	for _, wedding := range s.weddings {
		if wedding.UserID == userID {
			result = append(result, *wedding)
		}
	}
	return result, nil
}

func (s *fakeWeddingStore) Update(wedding *models.Wedding) error {
	if _, ok := s.weddings[wedding.ID]; !ok {
		return errNotFound
	}
	copied := *wedding
	s.weddings[wedding.ID] = &copied
	return nil
}

func (s *fakeWeddingStore) SlugExists(slug string) (bool, error) {
	_, err := s.GetBySlug(slug)
	return err == nil, nil
}

type fakeGuestStore struct {
	guests      map[uint]*models.Guest
	plusOnes    []models.PlusOne
	nextID      uint
	failCreate  bool
	failPlusOne bool
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{guests: make(map[uint]*models.Guest)}
}

func (s *fakeGuestStore) Create(guest *models.Guest) error {
	if s.failCreate {
		return errors.New("insert failed")
	}
	s.nextID++
	guest.ID = s.nextID
	copied := *guest
	s.guests[guest.ID] = &copied
	return nil
}

func (s *fakeGuestStore) GetByID(id uint) (*models.Guest, error) {
	guest, ok := s.guests[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *guest
	return &copied, nil
}

func (s *fakeGuestStore) GetByWeddingID(weddingID uint) ([]models.Guest, error) {
	var result []models.Guest
	for _, guest := range s.guests {
		if guest.WeddingID == weddingID {
			result = append(result, *guest)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *fakeGuestStore) UpdateStatus(id uint, status models.RSVPStatus) error {
	guest, ok := s.guests[id]
	if !ok {
		return errNotFound
	}
	guest.RSVPStatus = status
	return nil
}

func (s *fakeGuestStore) Delete(id uint) error {
	delete(s.guests, id)
	return nil
}

func (s *fakeGuestStore) CreatePlusOne(plusOne *models.PlusOne) error {
	if s.failPlusOne {
		return errors.New("insert failed")
	}
	plusOne.ID = uint(len(s.plusOnes) + 1)
	s.plusOnes = append(s.plusOnes, *plusOne)
	return nil
}

type fakePhotoStore struct {
	photos      map[uint]*models.Photo
	nextID      uint
	failCascade bool
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: make(map[uint]*models.Photo)}
}

func (s *fakePhotoStore) Create(photo *models.Photo) error {
	s.nextID++
	photo.ID = s.nextID
	copied := *photo
	s.photos[photo.ID] = &copied
	return nil
}

func (s *fakePhotoStore) GetByID(id uint) (*models.Photo, error) {
	photo, ok := s.photos[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *photo
	return &copied, nil
}

func (s *fakePhotoStore) GetGuestPhotosByWeddingID(weddingID uint) ([]models.Photo, error) {
	var result []models.Photo
	for _, photo := range s.photos {
		if photo.WeddingID == weddingID && photo.PhotoType == models.PhotoTypeGuest {
			result = append(result, *photo)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *fakePhotoStore) GetApprovedGuestPhotos(weddingID uint) ([]models.Photo, error) {
	photos, _ := s.GetGuestPhotosByWeddingID(weddingID)
	var result []models.Photo
	for _, photo := range photos {
		if photo.ApprovalStatus == models.ApprovalApproved {
			result = append(result, photo)
		}
	}
	return result, nil
}

func (s *fakePhotoStore) UpdateApprovalStatus(id uint, status models.ApprovalStatus) error {
	photo, ok := s.photos[id]
	if !ok {
		return errNotFound
	}
	photo.ApprovalStatus = status
	return nil
}

func (s *fakePhotoStore) ApproveMatchingPending(weddingID uint, uploaderName string) (int64, error) {
	if s.failCascade {
		return 0, errors.New("update failed")
	}
	var n int64
	for _, photo := range s.photos {
		if photo.WeddingID == weddingID &&
			photo.ApprovalStatus == models.ApprovalPending &&
			strings.EqualFold(photo.UploadedByGuest, uploaderName) {
			photo.ApprovalStatus = models.ApprovalApproved
			n++
		}
	}
	return n, nil
}

func (s *fakePhotoStore) Delete(id uint) error {
	delete(s.photos, id)
	return nil
}

type fakeLoveStoryStore struct {
	events map[uint]*models.LoveStoryEvent
	nextID uint
}

func newFakeLoveStoryStore() *fakeLoveStoryStore {
	return &fakeLoveStoryStore{events: make(map[uint]*models.LoveStoryEvent)}
}

func (s *fakeLoveStoryStore) Create(event *models.LoveStoryEvent) error {
	s.nextID++
	event.ID = s.nextID
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *fakeLoveStoryStore) GetByID(id uint) (*models.LoveStoryEvent, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *fakeLoveStoryStore) GetByWeddingID(weddingID uint) ([]models.LoveStoryEvent, error) {
	var result []models.LoveStoryEvent
	for _, event := range s.events {
		if event.WeddingID == weddingID {
			result = append(result, *event)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderIndex < result[j].OrderIndex })
	return result, nil
}

func (s *fakeLoveStoryStore) Update(event *models.LoveStoryEvent) error {
	if _, ok := s.events[event.ID]; !ok {
		return errNotFound
	}
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *fakeLoveStoryStore) UpdateOrderIndex(id uint, orderIndex int) error {
	event, ok := s.events[id]
	if !ok {
		return errNotFound
	}
	event.OrderIndex = orderIndex
	return nil
}

func (s *fakeLoveStoryStore) Delete(id uint) error {
	delete(s.events, id)
	return nil
}

func (s *fakeLoveStoryStore) CountByWeddingID(weddingID uint) (int64, error) {
	events, _ := s.GetByWeddingID(weddingID)
	return int64(len(events)), nil
}

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (s *fakeUserStore) EmailExists(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	return err == nil, nil
}

type fakeCodeStore struct {
	codes  []models.LoginCode
	nextID uint
}

func (s *fakeCodeStore) Create(code *models.LoginCode) error {
	s.nextID++
	code.ID = s.nextID
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	s.codes = append(s.codes, *code)
	return nil
}

func (s *fakeCodeStore) GetActiveByEmail(email string, now time.Time) ([]models.LoginCode, error) {
	var result []models.LoginCode
	for _, code := range s.codes {
		if code.Email == email && code.ExpiresAt.After(now) {
			result = append(result, code)
		}
	}
	return result, nil
}

func (s *fakeCodeStore) DeleteForEmail(email string) error {
	kept := s.codes[:0]
	for _, code := range s.codes {
		if code.Email != email {
			kept = append(kept, code)
		}
	}
	s.codes = kept
	return nil
}

type fakeMailer struct {
	loginCodes map[string]string // email -> last code
	welcomes   []string
	failSend   bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{loginCodes: make(map[string]string)}
}

func (m *fakeMailer) SendLoginCodeEmail(email, code string) error {
	if m.failSend {
		return errors.New("send failed")
	}
	m.loginCodes[email] = code
	return nil
}

func (m *fakeMailer) SendWelcomeEmail(email, fullName string) error {
	m.welcomes = append(m.welcomes, email)
	return nil
}

// fakeStorage keeps objects in memory. failures is consumed one entry per
// Upload call; a true entry fails that call.
type fakeStorage struct {
	objects  map[string][]byte
	failures []bool
	uploads  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(bucket, key string, reader io.Reader) error {
	call := s.uploads
	s.uploads++
	if call < len(s.failures) && s.failures[call] {
		return errors.New("upload failed")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[bucket+"/"+key] = data
	return nil
}

func (s *fakeStorage) Download(bucket, key string) (io.ReadCloser, error) {
	data, ok := s.objects[bucket+"/"+key]
	if !ok {
		return nil, errNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(bucket, key string) error {
	delete(s.objects, bucket+"/"+key)
	return nil
}

func (s *fakeStorage) GetPublicURL(bucket, key string) string {
	return "https://cdn.test/" + bucket + "/" + key
}

type fakePublisher struct {
	events []realtime.Event
}

func (p *fakePublisher) Publish(evt realtime.Event) {
	p.events = append(p.events, evt)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.R2.PhotoBucket = "wedding-photos"
	cfg.R2.ImageBucket = "wedding-images"
	return cfg
}

// fileHeader builds a real multipart.FileHeader the way fiber would hand it
// to a handler.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File["photo"]
	require.Len(t, files, 1)
	return files[0]
}
