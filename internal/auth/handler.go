package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/suyashwaghate123/happyhomesbackend/internal/config"
	"github.com/suyashwaghate123/happyhomesbackend/internal/httpx"
	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
	"github.com/suyashwaghate123/happyhomesbackend/internal/validation"
)

type Handler struct {
	cfg     *config.Config
	manager *Manager
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(cfg *config.Config, manager *Manager, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		manager: manager,
		val:     val,
		log:     log,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		h.log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		h.log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	if h.manager == nil || (h.cfg.AdminPassword == "" && h.cfg.AdminPasswordHash == "") {
		h.log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	if !VerifyCredentials(req.Username, req.Password, h.cfg.AdminUser, h.cfg.AdminPasswordHash, h.cfg.AdminPassword) {
		h.log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	accessToken, err := h.manager.NewAccessToken("admin")
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "hh_access",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.manager.AccessTTL / time.Second),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteData(w, http.StatusOK, "Login successful", map[string]string{"status": "ok"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "hh_access",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	transport.WriteData(w, http.StatusOK, "Logged out", map[string]string{"status": "ok"})
}
