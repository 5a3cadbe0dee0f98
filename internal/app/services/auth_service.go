package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/campusops/ssis/internal/app/models"
	"github.com/campusops/ssis/internal/pkg/apperrors"
	"github.com/campusops/ssis/internal/pkg/auth"
	"github.com/campusops/ssis/internal/pkg/logger"
	"github.com/campusops/ssis/internal/pkg/oauth"
)

var usernameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, int, error)
	Logout(ctx context.Context, jti string) error
	GetCurrentUser(ctx context.Context, username string) (*models.User, error)
	LoginWithGoogle(ctx context.Context, info *oauth.UserInfo) (*models.User, string, int, error)
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo      UserRepo
	blocklistRepo BlocklistRepo
	jwtService    *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserRepo, blocklistRepo BlocklistRepo, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		blocklistRepo: blocklistRepo,
		jwtService:    jwtService,
	}
}

// Register creates a new local account with a hashed password
func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidationFailed)
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	registered, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if registered {
		return nil, apperrors.ErrEmailRegistered
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still hit the unique constraint.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, err
	}

	logger.Info().Str("username", username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, string, int, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", 0, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Str("username", username).Msg("User logged in")
	return user, token, expiresIn, nil
}

// Logout revokes the token carrying the given ID
func (s *authServiceImpl) Logout(ctx context.Context, jti string) error {
	if strings.TrimSpace(jti) == "" {
		return apperrors.ErrTokenInvalid
	}
	if err := s.blocklistRepo.Add(ctx, jti); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

// GetCurrentUser resolves the authenticated user's profile
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IsTokenRevoked reports whether a token ID is on the blocklist
func (s *authServiceImpl) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.blocklistRepo.IsRevoked(ctx, jti)
}

// LoginWithGoogle signs in a user identified by a verified Google profile,
// provisioning a local account on first sight. The account gets an unusable
// random credential so it can only be accessed through Google.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, info *oauth.UserInfo) (*models.User, string, int, error) {
	if info == nil || strings.TrimSpace(info.Email) == "" {
		return nil, "", 0, fmt.Errorf("%w: Google profile has no email", apperrors.ErrValidationFailed)
	}

	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, "", 0, fmt.Errorf("error looking up user: %w", err)
	}

	if user == nil {
		user, err = s.provisionGoogleUser(ctx, info, email)
		if err != nil {
			return nil, "", 0, err
		}
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Str("username", user.Username).Msg("User logged in via Google")
	return user, token, expiresIn, nil
}

func (s *authServiceImpl) provisionGoogleUser(ctx context.Context, info *oauth.UserInfo, email string) (*models.User, error) {
	base := sanitizeUsername(info.Name)
	if base == "" {
		base = strings.SplitN(email, "@", 2)[0]
		base = sanitizeUsername(base)
	}
	if base == "" {
		base = "user"
	}

	username := base
	for suffix := 1; ; suffix++ {
		taken, err := s.userRepo.UsernameExists(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("error checking username: %w", err)
		}
		if !taken {
			break
		}
		username = fmt.Sprintf("%s%d", base, suffix)
	}

	hashed, err := auth.HashPassword(auth.RandomCredential())
	if err != nil {
		return nil, fmt.Errorf("error hashing credential: %w", err)
	}

	googleID := info.Sub
	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		GoogleID: &googleID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error provisioning user: %w", err)
	}

	logger.Info().Str("username", username).Msg("Provisioned Google account")
	return user, nil
}

func sanitizeUsername(name string) string {
	name = strings.TrimSpace(name)
	name = usernameSanitizer.ReplaceAllString(name, "")
	return name
}
