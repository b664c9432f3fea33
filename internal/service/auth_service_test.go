package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	svc := NewAuthService(validator.New(), zap.NewNop(), AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "timetable-api",
	})
	require.NoError(t, svc.Register("admin@school.local", "Administrator", "admin123", models.RoleAdmin))
	return svc
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc := newAuthFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@school.local", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "admin@school.local", res.User.Email)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@school.local", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@school.local", Password: "admin123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginValidation(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "admin123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceTokenRoundTrip(t *testing.T) {
	svc := newAuthFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@school.local", Password: "admin123"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, "admin@school.local", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "timetable-api", claims.Issuer)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newAuthFixture(t)
	other := NewAuthService(validator.New(), zap.NewNop(), AuthConfig{Secret: "other-secret", Expiration: time.Hour})
	require.NoError(t, other.Register("admin@school.local", "Administrator", "admin123", models.RoleAdmin))

	res, err := other.Login(context.Background(), models.LoginRequest{Email: "admin@school.local", Password: "admin123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.AccessToken)
	assert.Error(t, err)
}

func TestAuthServiceRegisterOverwrites(t *testing.T) {
	svc := newAuthFixture(t)
	require.NoError(t, svc.Register("admin@school.local", "Administrator", "rotated", models.RoleAdmin))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@school.local", Password: "admin123"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "admin@school.local", Password: "rotated"})
	assert.NoError(t, err)
}
