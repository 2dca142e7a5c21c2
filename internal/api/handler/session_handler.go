package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/api/metrics"
	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

type logoutService interface {
	Logout(ctx context.Context, sess *domain.Session, confirmed bool) (ports.Confirmation, error)
}

type SessionHandler struct {
	sessions logoutService
	cookie   CookieConfig
}

func NewSessionHandler(sessions logoutService, cookie CookieConfig) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookie: cookie}
}

// Logout is confirmation-gated. Without confirm it answers 428 with the
// prompt; with confirm it ends the session and replaces the stack with /login.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      confirmRequest  false  "Confirmation"
// @Success      200   {object}  ports.Confirmation
// @Failure      428   {object}  ports.Confirmation
// @Router       /logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.sessions.Logout(c.Request().Context(), sessionFrom(c), req.Confirm)
	if err != nil {
		return err
	}
	if res.Prompt != nil {
		return c.JSON(http.StatusPreconditionRequired, res)
	}

	metrics.LogoutsTotal.Inc()
	h.cookie.clear(c)
	return c.JSON(http.StatusOK, res)
}
