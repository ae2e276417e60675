package middleware

import (
	"errors"
	"strings"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey holds the verified subject in the gin context.
	UserIDKey = "userID"
	// EmailKey holds the verified email, when the provider supplies one.
	EmailKey = "email"
)

// AuthMiddleware resolves the bearer token into an identity. A missing or
// malformed header is 401; a token the verifier rejects is 403; a provider
// that cannot answer is 503.
func AuthMiddleware(verifier auth.Verifier, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := bearerToken(authHeader)
		if !ok {
			m.AuthRejected("missing")
			logger.CtxWarn(ctx, "missing bearer token", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		identity, err := verifier.Verify(ctx, tokenStr)
		if errors.Is(err, auth.ErrProviderUnavailable) {
			m.AuthRejected("unavailable")
			logger.CtxWithError(ctx, "identity provider unavailable", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrIdentityUnavailable)
			return
		}
		if err != nil {
			m.AuthRejected("invalid")
			logger.CtxWarn(ctx, "token verification failed", "error", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(UserIDKey, identity.Subject)
		if identity.Email != "" {
			c.Set(EmailKey, identity.Email)
		}
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, identity.Subject))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// GetUserID returns the verified subject, or "" outside AuthMiddleware.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
