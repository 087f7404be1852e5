package handler

import (
	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the session endpoints the API exposes. Identity
// provisioning lives outside this service; tokens arrive already issued.
type AuthHandler struct {
	BaseHandler
	blacklist auth.TokenBlacklist
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{blacklist: blacklist}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/me", h.Me)
		authGroup.POST("/logout", h.Logout)
	}
}

// MeResponse describes the authenticated caller
type MeResponse struct {
	CompanyID string `json:"companyId"`
	UserID    string `json:"userId"`
	Email     string `json:"email,omitempty"`
}

// Me returns the identity carried by the presented token
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	h.Success(c, MeResponse{
		CompanyID: claims.CompanyID,
		UserID:    claims.UserID,
		Email:     claims.Email,
	})
}

// Logout revokes the presented token for its remaining lifetime. Revocation
// is by JTI, so other sessions of the same user stay valid.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if h.blacklist == nil || claims.ID == "" {
		// nothing to revoke against; logout still succeeds client-side
		h.NoContent(c)
		return
	}

	if err := h.blacklist.Revoke(c.Request.Context(), claims.ID, claims.GetRemainingTTL()); err != nil {
		h.InternalError(c, "Failed to revoke token")
		return
	}
	h.NoContent(c)
}
