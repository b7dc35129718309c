package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/promptvault/prompt-library/internal/api/metrics"
	"github.com/promptvault/prompt-library/internal/core/domain"
	"github.com/promptvault/prompt-library/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// AuthHandler exposes the session store over HTTP and issues the bearer
// tokens consumed by the session middleware.
type AuthHandler struct {
	session   ports.SessionService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(session ports.SessionService, jwtSecret string) *AuthHandler {
	return &AuthHandler{session: session, jwtSecret: jwtSecret, tokenTTL: defaultTokenTTL}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  *domain.Principal `json:"user"`
}

type sessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	User          *domain.Principal `json:"user,omitempty"`
}

// Login authenticates against the credential registry.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	principal, err := h.session.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	token, err := h.issueToken(principal)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to issue token"})
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: principal})
}

// Register creates a registry entry and signs the new user in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	principal, err := h.session.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	token, err := h.issueToken(principal)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to issue token"})
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: principal})
}

// Logout clears the current session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the authentication state consumed by route guards.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: h.session.IsAuthenticated(),
		User:          h.session.Current(),
	})
}

func (h *AuthHandler) issueToken(principal *domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":   principal.ID,
		"email": principal.Email,
		"name":  principal.Name,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
