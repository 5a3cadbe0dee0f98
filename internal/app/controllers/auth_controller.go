package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusops/ssis/internal/app/models/dto"
	"github.com/campusops/ssis/internal/app/services"
	"github.com/campusops/ssis/internal/middleware"
	"github.com/campusops/ssis/internal/pkg/logger"
	"github.com/campusops/ssis/internal/pkg/oauth"
)

const stateCookieName = "oauth_state"
const stateCookieMaxAge = 600

// AuthController handles authentication endpoints
type AuthController struct {
	authService  services.AuthService
	googleClient *oauth.GoogleClient
	frontendURL  string
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, googleClient *oauth.GoogleClient, frontendURL string) *AuthController {
	return &AuthController{
		authService:  authService,
		googleClient: googleClient,
		frontendURL:  frontendURL,
	}
}

// Register creates a new local account
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("username, email and a password of at least 8 characters are required"))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user": dto.UserInfo{
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Login authenticates with username and password and issues an access token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("username and password are required"))
		return
	}

	user, token, expiresIn, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message:     "login successful",
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User: dto.UserInfo{
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Logout revokes the presented access token
func (c *AuthController) Logout(ctx *gin.Context) {
	jti := ctx.GetString(middleware.ContextTokenID)
	if err := c.authService.Logout(ctx.Request.Context(), jti); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}

// Me returns the authenticated user's profile
func (c *AuthController) Me(ctx *gin.Context) {
	username := ctx.GetString(middleware.ContextUsername)
	user, err := c.authService.GetCurrentUser(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserInfo{
		Username: user.Username,
		Email:    user.Email,
	})
}

// GoogleLogin starts the Google OAuth flow. A random state value is pinned
// in a short-lived cookie and verified on callback.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	state := uuid.New().String()
	ctx.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", false, true)
	ctx.Redirect(http.StatusFound, c.googleClient.AuthCodeURL(state))
}

// GoogleCallback completes the Google OAuth flow and redirects back to the
// frontend with an access token, or with an error description on failure.
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	cookieState, err := ctx.Cookie(stateCookieName)
	if err != nil || cookieState == "" || ctx.Query("state") != cookieState {
		c.redirectWithError(ctx, "invalid oauth state")
		return
	}
	ctx.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		c.redirectWithError(ctx, "authorization was denied")
		return
	}

	info, err := c.googleClient.FetchUserInfo(ctx.Request.Context(), code)
	if err != nil {
		logger.Error().Err(err).Msg("Google code exchange failed")
		c.redirectWithError(ctx, "google sign-in failed")
		return
	}

	_, token, expiresIn, err := c.authService.LoginWithGoogle(ctx.Request.Context(), info)
	if err != nil {
		logger.Error().Err(err).Msg("Google sign-in failed")
		c.redirectWithError(ctx, "google sign-in failed")
		return
	}

	redirect := fmt.Sprintf("%s/oauth/callback?access_token=%s&expires_in=%d",
		c.frontendURL, url.QueryEscape(token), expiresIn)
	ctx.Redirect(http.StatusFound, redirect)
}

func (c *AuthController) redirectWithError(ctx *gin.Context, message string) {
	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s/oauth/callback?error=%s", c.frontendURL, url.QueryEscape(message)))
}
