package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusops/ssis/internal/app/models/dto"
	"github.com/campusops/ssis/internal/pkg/auth"
	"github.com/campusops/ssis/internal/pkg/logger"
)

// Context keys set by the auth middleware
const (
	ContextUsername = "username"
	ContextTokenID  = "jti"
)

// TokenRevocationChecker reports whether a token ID has been revoked
type TokenRevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token on incoming requests and rejects tokens
// that expired or were revoked through logout. On success the username and
// token ID are stored in the request context.
func Auth(jwtService *auth.JWTService, revocations TokenRevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("missing or malformed authorization header"))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		revoked, err := revocations.IsTokenRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error().Err(err).Msg("Error checking token revocation")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("token revoked"))
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextTokenID, claims.ID)
		c.Next()
	}
}
