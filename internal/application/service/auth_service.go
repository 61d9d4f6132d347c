package service

import (
	"context"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/internal/domain/repository"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/avinashrk/billpoint-api/pkg/oauth"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/google/uuid"
)

// AuthService handles Google sign-in and the PIN step
type AuthService struct {
	userRepo   repository.UserRepository
	oauthSvc   *oauth.GoogleOAuthService
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, oauthSvc *oauth.GoogleOAuthService, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, oauthSvc: oauthSvc, jwtManager: jwtManager}
}

// LoginResult is what a successful sign-in hands the transport layer.
type LoginResult struct {
	User        *entity.User
	Token       string
	PinRequired bool // true until the session has passed the PIN step
}

// GoogleLogin verifies the posted Google ID token, upserts the account and
// mints a session token. The token is minted without PIN verification; the
// console must complete the PIN step before billing endpoints open up.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	info, err := s.oauthSvc.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperror.NewAppError(401, "Google sign-in failed")
	}
	return s.loginWithGoogleInfo(ctx, info)
}

// GoogleAuthURL returns the consent URL for the redirect code flow.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.oauthSvc.IsConfigured() {
		return "", apperror.NewAppError(503, "Google OAuth is not configured")
	}
	return s.oauthSvc.GetAuthURL(state), nil
}

// GoogleCallback completes the redirect code flow.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*LoginResult, error) {
	token, err := s.oauthSvc.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewAppError(401, "Google sign-in failed")
	}
	info, err := s.oauthSvc.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperror.NewAppError(401, "Google sign-in failed")
	}
	return s.loginWithGoogleInfo(ctx, info)
}

func (s *AuthService) loginWithGoogleInfo(ctx context.Context, info *oauth.GoogleUserInfo) (*LoginResult, error) {
	user, err := s.userRepo.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Returning user who signed in before Google IDs were stored
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			GoogleID:    info.ID,
			Email:       info.Email,
			Name:        info.Name,
			LastLoginAt: &now,
		}
		if info.Picture != "" {
			user.Picture = &info.Picture
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.GoogleID = info.ID
		user.Name = info.Name
		if info.Picture != "" {
			user.Picture = &info.Picture
		}
		user.LastLoginAt = &now
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.jwtManager.GenerateSessionToken(user.ID, user.Email, user.Name, false)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token, PinRequired: true}, nil
}

// SetPin stores the user's PIN. An account that already has one must verify
// it through VerifyPin first; this endpoint never overwrites silently.
func (s *AuthService) SetPin(ctx context.Context, userID uuid.UUID, pin string) error {
	if len(pin) < 4 || len(pin) > 8 {
		return apperror.NewBadRequestError("PIN must be 4 to 8 digits")
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return apperror.NewBadRequestError("PIN must contain only digits")
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrUnauthorized
	}
	if user.HasPin() {
		return apperror.NewConflictError("PIN is already set")
	}

	if err := user.SetPin(pin); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

// VerifyPin checks the PIN and, on success, reissues the session token with
// the PIN step marked as passed.
func (s *AuthService) VerifyPin(ctx context.Context, userID uuid.UUID, pin string) (*LoginResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}
	if !user.HasPin() {
		return nil, apperror.ErrPinNotSet
	}
	if !user.CheckPin(pin) {
		return nil, apperror.ErrInvalidPin
	}

	token, err := s.jwtManager.GenerateSessionToken(user.ID, user.Email, user.Name, true)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token, PinRequired: false}, nil
}

// Me returns the signed-in user's profile.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}
	return user, nil
}
