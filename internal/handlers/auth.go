package handlers

import (
	"net/http"

	"github.com/limovia/fleetcrm/internal/auth"
	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/i18n"
	"github.com/limovia/fleetcrm/internal/middleware"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/validation"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *auth.Service
	users       db.UserCollection
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, users db.UserCollection) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
	}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if !decodeBody(w, r, &loginReq) {
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "username and password are required", nil)
		return
	}

	user, err := h.users.FindUserByUsername(r.Context(), loginReq.Username)
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if !user.IsActive {
		httpx.JSONError(w, http.StatusUnauthorized, "account is deactivated", nil)
		return
	}

	if !h.authService.CheckPassword(loginReq.Password, user.PasswordHash) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to generate token", nil)
		return
	}

	refreshToken, err := h.authService.GenerateRefreshToken()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to generate refresh token", nil)
		return
	}

	if err := h.users.UpdateLastLogin(r.Context(), user.ID.Hex()); err != nil {
		log.WithError(err).Warn("failed to update last login")
	}

	httpx.JSON(w, http.StatusOK, models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
	})
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("username", req.Username, v)
	validation.Required("email", req.Email, v)
	validation.Email("email", req.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	if err := h.authService.ValidateUsername(req.Username); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := h.authService.ValidatePassword(req.Password); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !models.IsValidRole(req.Role) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid role", nil)
		return
	}

	// Ad hoc uniqueness check; the store itself enforces nothing.
	if _, err := h.users.FindUserByEmail(r.Context(), req.Email); err == nil {
		httpx.JSONError(w, http.StatusConflict, i18n.T(lang, "duplicate_email"), nil)
		return
	}
	if _, err := h.users.FindUserByUsername(r.Context(), req.Username); err == nil {
		httpx.JSONError(w, http.StatusConflict, "username already taken", nil)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to hash password", nil)
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Language:     lang,
	}

	id, err := h.users.InsertUser(r.Context(), user)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "user context not found", nil)
		return
	}
	user, err := h.users.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// UpdateLanguage persists the caller's dashboard language preference.
func (h *AuthHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "user context not found", nil)
		return
	}

	var req struct {
		Language string `json:"language"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	lang := i18n.DetectLanguage(req.Language)

	if err := h.users.UpdateLanguage(r.Context(), claims.UserID, lang); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"language": lang})
}
