package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/console-gateway/internal/api/metrics"
	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/ports"
)

// AuthHandler exposes the session lifecycle: login, logout, restore from the
// token store, and the current snapshot.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionResponse deliberately omits the raw tokens: callers only need the
// resolved state, and the credential pair stays inside the gateway.
type sessionResponse struct {
	Status string              `json:"status"`
	Role   string              `json:"role,omitempty"`
	User   *domain.UserProfile `json:"user,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func toSessionResponse(sess domain.Session) sessionResponse {
	resp := sessionResponse{
		Status: string(sess.Status),
		Role:   sess.Role,
		User:   sess.User,
	}
	if sess.Err != nil {
		resp.Error = sess.Err.Error()
	}
	return resp
}

// Login authenticates the operator against the backend and publishes a valid
// session on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Logout clears the token store and resets the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the current session snapshot without side effects.
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Current()))
}

// Restore re-runs the session load from the token store. Safe to call
// repeatedly: concurrent loads collapse into one.
func (h *AuthHandler) Restore(c echo.Context) error {
	sess, err := h.sessions.Load(c.Request().Context())
	if err != nil {
		metrics.SessionLoadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SessionLoadsTotal.WithLabelValues(loadResult(sess)).Inc()
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

func loadResult(sess domain.Session) string {
	if sess.Status == domain.SessionValid {
		return "valid"
	}
	switch {
	case errors.Is(sess.Err, domain.ErrTokenMissing):
		return "token_missing"
	case errors.Is(sess.Err, domain.ErrTokenMalformed):
		return "token_malformed"
	case errors.Is(sess.Err, domain.ErrTokenExpired):
		return "token_expired"
	case errors.Is(sess.Err, domain.ErrProfileFetchFailed):
		return "profile_fetch_failed"
	default:
		return "invalid"
	}
}
