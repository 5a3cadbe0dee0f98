package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/pkg/apperrors"
	"github.com/campusops/ssis/internal/pkg/auth"
	"github.com/campusops/ssis/internal/pkg/oauth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration hashes the password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("UsernameExists", ctx, "alice").Return(false, nil).Once()
		userRepo.On("EmailExists", ctx, "alice@example.com").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" &&
				u.Email == "alice@example.com" &&
				u.Password != "hunter2secret" &&
				auth.CheckPassword(u.Password, "hunter2secret")
		})).Return(nil).Once()

		user, err := svc.Register(ctx, "alice", "Alice@Example.com", "hunter2secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("taken username is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("UsernameExists", ctx, "alice").Return(true, nil).Once()

		_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2secret")
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		userRepo.AssertExpectations(t)
	})

	t.Run("registered email is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("UsernameExists", ctx, "alice").Return(false, nil).Once()
		userRepo.On("EmailExists", ctx, "alice@example.com").Return(true, nil).Once()

		_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2secret")
		assert.ErrorIs(t, err, apperrors.ErrEmailRegistered)
		userRepo.AssertExpectations(t)
	})

	t.Run("empty fields fail validation", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockBlocklistRepo), newTestJWTService())

		_, err := svc.Register(ctx, "", "alice@example.com", "hunter2secret")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := auth.HashPassword("hunter2secret")
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		jwtService := newTestJWTService()
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), jwtService)

		userRepo.On("GetByUsername", ctx, "alice").
			Return(&models.User{Username: "alice", Email: "alice@example.com", Password: hashed}, nil).Once()

		user, token, expiresIn, err := svc.Login(ctx, "alice", "hunter2secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, 3600, expiresIn)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("GetByUsername", ctx, "alice").
			Return(&models.User{Username: "alice", Password: hashed}, nil).Once()

		_, _, _, err := svc.Login(ctx, "alice", "wrong-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("GetByUsername", ctx, "nobody").
			Return(nil, apperrors.ErrUserNotFound).Once()

		_, _, _, err := svc.Login(ctx, "nobody", "whatever1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("adds the token ID to the blocklist", func(t *testing.T) {
		blocklistRepo := new(MockBlocklistRepo)
		svc := NewAuthService(new(MockUserRepo), blocklistRepo, newTestJWTService())

		blocklistRepo.On("Add", ctx, "some-jti").Return(nil).Once()

		require.NoError(t, svc.Logout(ctx, "some-jti"))
		blocklistRepo.AssertExpectations(t)
	})

	t.Run("empty token ID is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockBlocklistRepo), newTestJWTService())
		assert.ErrorIs(t, svc.Logout(ctx, ""), apperrors.ErrTokenInvalid)
	})
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("existing account signs in without provisioning", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("GetByEmail", ctx, "bob@example.com").
			Return(&models.User{Username: "bob", Email: "bob@example.com"}, nil).Once()

		user, token, _, err := svc.LoginWithGoogle(ctx, &oauth.UserInfo{
			Sub:   "google-sub-1",
			Email: "Bob@Example.com",
			Name:  "Bob Smith",
		})
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.NotEmpty(t, token)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("first sign-in provisions an account from the profile name", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("GetByEmail", ctx, "carol@example.com").
			Return(nil, apperrors.ErrUserNotFound).Once()
		userRepo.On("UsernameExists", ctx, "CarolJones").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "CarolJones" &&
				u.Email == "carol@example.com" &&
				u.GoogleID != nil && *u.GoogleID == "google-sub-2" &&
				u.Password != ""
		})).Return(nil).Once()

		user, _, _, err := svc.LoginWithGoogle(ctx, &oauth.UserInfo{
			Sub:   "google-sub-2",
			Email: "carol@example.com",
			Name:  "Carol Jones",
		})
		require.NoError(t, err)
		assert.Equal(t, "CarolJones", user.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("username collisions get a numeric suffix", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockBlocklistRepo), newTestJWTService())

		userRepo.On("GetByEmail", ctx, "dave@example.com").
			Return(nil, apperrors.ErrUserNotFound).Once()
		userRepo.On("UsernameExists", ctx, "Dave").Return(true, nil).Once()
		userRepo.On("UsernameExists", ctx, "Dave1").Return(true, nil).Once()
		userRepo.On("UsernameExists", ctx, "Dave2").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "Dave2"
		})).Return(nil).Once()

		user, _, _, err := svc.LoginWithGoogle(ctx, &oauth.UserInfo{
			Sub:   "google-sub-3",
			Email: "dave@example.com",
			Name:  "Dave",
		})
		require.NoError(t, err)
		assert.Equal(t, "Dave2", user.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("profile without email is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockBlocklistRepo), newTestJWTService())

		_, _, _, err := svc.LoginWithGoogle(ctx, &oauth.UserInfo{Sub: "x"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
