package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vmalgo/researchlab/internal/adapters/transport/http/dto"
	"github.com/vmalgo/researchlab/internal/app/auth/service"
	customErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
	"github.com/vmalgo/researchlab/internal/domain/auth/model"
)

// ContextUserKey is where Auth stores the resolved account for handlers.
const ContextUserKey = "auth.user"

// Auth guards protected routes. It accepts only bearer tokens of kind
// "access": a refresh token, even a fresh one, is rejected here because it
// authenticates nothing but the refresh operation itself.
func Auth(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := svc.Validate(c.Request.Context(), dto.ValidateDTO{AccessToken: raw})
		if err != nil {
			switch {
			case customErrors.IsAccountInactive(err):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account inactive"})
			case customErrors.IsUnavailable(err):
				// A storage outage is not a credential failure; telling the
				// client its token is invalid here would be a lie.
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the account Auth attached to the request.
func UserFromContext(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
