package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Context keys set by the auth middleware and read by every handler.
const (
	ContextKeyUserID         = "user_id"
	ContextKeyUserUUID       = "user_uuid"
	ContextKeyEmail          = "email"
	ContextKeyOrganizationID = "organization_id"
	ContextKeyRole           = "role"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth accepts any valid token, including the tenantless one
// issued at login.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserUUID, claims.UserUUID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyOrganizationID, claims.OrganizationID)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RequireOrganization additionally demands an organization-scoped token,
// i.e. the caller has gone through organization selection.
func (m *AuthMiddleware) RequireOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.GetUint(ContextKeyOrganizationID)
		if orgID == 0 {
			utils.ErrorResponse(c, http.StatusForbidden, "no organization selected")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin demands the admin role within the selected organization.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextKeyRole) != "admin" {
			utils.ErrorResponse(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
