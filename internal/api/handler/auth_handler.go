package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homeaid/care-portal/internal/api/metrics"
	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
	"github.com/homeaid/care-portal/internal/core/service"
)

// CookieConfig describes the cookie carrying the session token.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (cc CookieConfig) set(c echo.Context, token string) {
	if cc.Name == "" {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     cc.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (cc CookieConfig) clear(c echo.Context) {
	if cc.Name == "" {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     cc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

var demoColors = map[domain.Role]domain.Color{
	domain.RoleAdmin:    domain.ColorGreen,
	domain.RoleManager:  domain.ColorBlue,
	domain.RoleProvider: domain.ColorOrange,
}

// AuthHandler serves the login screen and its submissions.
type AuthHandler struct {
	screens *service.ScreenRegistry
	demo    ports.DemoDirectory
	cookie  CookieConfig
}

// NewAuthHandler builds an AuthHandler. demo is nil when demo logins are disabled.
func NewAuthHandler(screens *service.ScreenRegistry, demo ports.DemoDirectory, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{screens: screens, demo: demo, cookie: cookie}
}

// Screen returns the login screen document.
//
// @Summary      Login screen
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginScreen
// @Router       /login [get]
func (h *AuthHandler) Screen(c echo.Context) error {
	resp := loginScreen{
		Title:    "Home Aid",
		Subtitle: "Internal Management System",
		Footer:   "Secure access to Home Aid internal systems",
	}
	if h.demo != nil {
		resp.DemoTitle = "Demo Accounts"
		title := cases.Title(language.English)
		for _, r := range domain.Roles {
			if _, _, ok := h.demo.DemoAccount(r); ok {
				resp.DemoAccounts = append(resp.DemoAccounts, demoAccount{Role: r, Label: title.String(string(r)), Color: demoColors[r]})
			}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// OpenScreen registers a login screen instance.
//
// @Summary      Open a login screen
// @Tags         auth
// @Produce      json
// @Success      201  {object}  screenResponse
// @Router       /login/screens [post]
func (h *AuthHandler) OpenScreen(c echo.Context) error {
	s := h.screens.Open()
	return c.JSON(http.StatusCreated, screenResponse{ScreenID: s.ID()})
}

// CloseScreen disposes a login screen. A pending submission on it is discarded.
//
// @Summary      Dispose a login screen
// @Tags         auth
// @Param        id   path  string  true  "Screen id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /login/screens/{id} [delete]
func (h *AuthHandler) CloseScreen(c echo.Context) error {
	if err := h.screens.Close(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Login authenticates and routes to the role dashboard.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Failure      429   {object}  errorBody
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return h.submit(c, req.ScreenID, req.Email, req.Password)
}

// DemoLogin logs in with the demo account of a role.
//
// @Summary      Demo login
// @Tags         auth
// @Produce      json
// @Param        role       path   string  true   "admin, manager or provider"
// @Param        screen_id  query  string  false  "Login screen id"
// @Success      200  {object}  loginResponse
// @Failure      404  {object}  errorBody
// @Router       /login/demo/{role} [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	if h.demo == nil {
		return echo.NewHTTPError(http.StatusNotFound, "demo login disabled")
	}
	email, password, ok := h.demo.DemoAccount(domain.Role(c.Param("role")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no demo account for role")
	}
	return h.submit(c, c.QueryParam("screen_id"), email, password)
}

func (h *AuthHandler) submit(c echo.Context, screenID, email, password string) error {
	screen := h.screens.Ephemeral()
	if screenID != "" {
		s, err := h.screens.Get(screenID)
		if err != nil {
			return err
		}
		screen = s
	}

	ctx := c.Request().Context()
	out, err := screen.Submit(ctx, email, password)
	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
		// The client went away mid-submit; nobody is left to read an error.
		out, err = service.LoginOutcome{Discarded: true}, nil
	}
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}
	if out.Discarded {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeDiscarded).Inc()
		return c.JSON(http.StatusOK, loginResponse{Discarded: true})
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.RoleRoutesTotal.WithLabelValues(string(out.User.Role)).Inc()

	// The dashboard replaces the login screen.
	if screenID != "" {
		_ = h.screens.Close(screenID)
	}

	h.cookie.set(c, out.Navigation.Session)
	return c.JSON(http.StatusOK, loginResponse{Navigation: &out.Navigation, User: &out.User})
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return metrics.OutcomeMissingField
	case errors.Is(err, domain.ErrInvalidCredentials):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrTooManyAttempts):
		return metrics.OutcomeLocked
	case errors.Is(err, domain.ErrAuthInProgress):
		return metrics.OutcomeInProgress
	case errors.Is(err, context.Canceled):
		return metrics.OutcomeDiscarded
	}
	return metrics.OutcomeError
}
