package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/pkg/bcrypt"
	jwtPkg "github.com/sefazor/ourwedding-backend/pkg/jwt"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
	"go.uber.org/zap"
)

const (
	loginCodeDigits = 6
	loginCodeExpiry = 10 * time.Minute
)

type AuthService struct {
	userRepo UserStore
	codeRepo LoginCodeStore
	mailer   Mailer
	logger   *zap.Logger
}

func NewAuthService(userRepo UserStore, codeRepo LoginCodeStore, mailer Mailer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codeRepo: codeRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	// Best effort, the registration itself already succeeded.
	go func() {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.FullName); err != nil {
			s.logger.Warn("welcome email failed", zap.String("email", user.Email), zap.Error(err))
		}
	}()

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if user.Password == "" {
		// OTP-only account, there is no password to check.
		return nil, errors.New("this account signs in with an email code")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// RequestLoginCode issues a fresh one-time passcode and emails it. The email
// does not need an existing account: the account is created on first
// successful verification.
func (s *AuthService) RequestLoginCode(email string) error {
	email = normalizeEmail(email)

	code, err := utils.GenerateNumericCode(loginCodeDigits)
	if err != nil {
		return err
	}

	hash, err := bcrypt.HashPassword(code)
	if err != nil {
		return err
	}

	// Only the latest code is valid.
	if err := s.codeRepo.DeleteForEmail(email); err != nil {
		return err
	}

	if err := s.codeRepo.Create(&models.LoginCode{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(loginCodeExpiry),
	}); err != nil {
		return err
	}

	return s.mailer.SendLoginCodeEmail(email, code)
}

// VerifyLoginCode is the second step of the OTP flow: consume the code,
// create the account if it does not exist yet, return a session token.
func (s *AuthService) VerifyLoginCode(email, code string) (*models.AuthResponse, error) {
	email = normalizeEmail(email)

	codes, err := s.codeRepo.GetActiveByEmail(email, time.Now())
	if err != nil {
		return nil, err
	}

	matched := false
	for _, stored := range codes {
		if bcrypt.ComparePassword(stored.CodeHash, code) == nil {
			matched = true
			break
		}
	}
	if !matched {
		return nil, errors.New("invalid or expired code")
	}

	// Single use.
	if err := s.codeRepo.DeleteForEmail(email); err != nil {
		s.logger.Warn("failed to consume login codes", zap.String("email", email), zap.Error(err))
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		user = &models.User{Email: email}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
