package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinashrk/billpoint-api/internal/domain/entity"
	"github.com/avinashrk/billpoint-api/pkg/apperror"
	"github.com/avinashrk/billpoint-api/pkg/oauth"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(users *MockUserRepository) (*AuthService, *utils.JWTManager) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	oauthSvc := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{})
	return NewAuthService(users, oauthSvc, jwtManager), jwtManager
}

func seedUser(users *MockUserRepository) *entity.User {
	u := &entity.User{ID: uuid.New(), GoogleID: "g-123", Email: "ravi@example.com", Name: "Ravi"}
	users.Users = map[uuid.UUID]*entity.User{u.ID: u}
	return u
}

func TestSetPinThenVerify(t *testing.T) {
	users := &MockUserRepository{}
	svc, jwtManager := newAuthFixture(users)
	u := seedUser(users)

	require.NoError(t, svc.SetPin(context.Background(), u.ID, "4321"))
	assert.True(t, users.Users[u.ID].HasPin())

	result, err := svc.VerifyPin(context.Background(), u.ID, "4321")
	require.NoError(t, err)
	assert.False(t, result.PinRequired)

	claims, err := jwtManager.ValidateSessionToken(result.Token)
	require.NoError(t, err)
	assert.True(t, claims.PinVerified)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestVerifyPinWrongPin(t *testing.T) {
	users := &MockUserRepository{}
	svc, _ := newAuthFixture(users)
	u := seedUser(users)
	require.NoError(t, svc.SetPin(context.Background(), u.ID, "4321"))

	_, err := svc.VerifyPin(context.Background(), u.ID, "1111")
	assert.ErrorIs(t, err, apperror.ErrInvalidPin)
}

func TestVerifyPinBeforeSetup(t *testing.T) {
	users := &MockUserRepository{}
	svc, _ := newAuthFixture(users)
	u := seedUser(users)

	_, err := svc.VerifyPin(context.Background(), u.ID, "4321")
	assert.ErrorIs(t, err, apperror.ErrPinNotSet)
}

func TestSetPinValidation(t *testing.T) {
	users := &MockUserRepository{}
	svc, _ := newAuthFixture(users)
	u := seedUser(users)

	assert.Error(t, svc.SetPin(context.Background(), u.ID, "12"))
	assert.Error(t, svc.SetPin(context.Background(), u.ID, "123456789"))
	assert.Error(t, svc.SetPin(context.Background(), u.ID, "12ab"))
}

func TestSetPinDoesNotOverwrite(t *testing.T) {
	users := &MockUserRepository{}
	svc, _ := newAuthFixture(users)
	u := seedUser(users)

	require.NoError(t, svc.SetPin(context.Background(), u.ID, "4321"))
	err := svc.SetPin(context.Background(), u.ID, "9999")
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}
