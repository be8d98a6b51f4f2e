package handler

import (
	"quizvault/internal/adapter/http/dto"
	"quizvault/internal/adapter/http/middleware"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.authSvc.Register(c.Request.Context(), ports.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	setPrincipal(c, result)
	response.Created(c, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	setPrincipal(c, result)
	response.OK(c, toAuthResponse(result))
}

// GoogleLogin handles POST /api/auth/google.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	credential := req.Credential()
	if credential == "" {
		response.Error(c, apperror.Validation("idToken is required"))
		return
	}

	result, err := h.authSvc.GoogleLogin(c.Request.Context(), credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	setPrincipal(c, result)
	response.OK(c, toAuthResponse(result))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	profile, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	u := profile.User
	response.OK(c, dto.MeResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		GoogleID:      u.GoogleID,
		PhotoURL:      u.PhotoURL,
		Gold:          profile.Gold,
		Crystals:      profile.Crystals,
		UnlockedTests: nonNil(profile.UnlockedTestIDs),
		CreatedAt:     u.CreatedAt,
	})
}

// setPrincipal exposes the signed-in user to the audit middleware, which
// runs after the handler on public auth routes.
func setPrincipal(c *gin.Context, result *ports.AuthResult) {
	if result.User != nil {
		c.Set(middleware.CtxUserID, result.User.ID)
		c.Set(middleware.CtxAuditResourceID, result.User.ID.String())
	}
}

func toAuthResponse(result *ports.AuthResult) dto.AuthResponse {
	resp := dto.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Unix(),
	}
	if u := result.User; u != nil {
		resp.User = dto.UserSummary{
			ID:       u.ID.String(),
			Name:     u.Name,
			Email:    u.Email,
			PhotoURL: u.PhotoURL,
			Gold:     result.Gold,
			Crystals: result.Crystals,
		}
	}
	return resp
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
