package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Show returns the handler rendering role's dashboard. The session is
// optional; without one the dashboard renders with generic defaults.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Param        session  query     string  false  "Session token"
// @Success      200      {object}  ports.DashboardView
// @Router       /admin [get]
// @Router       /manager [get]
// @Router       /provider [get]
func (h *DashboardHandler) Show(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		view, err := h.dashboards.Build(c.Request().Context(), role, sessionFrom(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, view)
	}
}

// StartVisit is confirmation-gated like logout.
//
// @Summary      Start a provider visit
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        id    path      string          true   "Visit id"
// @Param        body  body      confirmRequest  false  "Confirmation"
// @Success      200   {object}  ports.Confirmation
// @Failure      404   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Failure      428   {object}  ports.Confirmation
// @Router       /provider/visits/{id}/start [post]
func (h *DashboardHandler) StartVisit(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.dashboards.StartVisit(c.Request().Context(), sessionFrom(c), c.Param("id"), req.Confirm)
	if err != nil {
		return err
	}
	if res.Prompt != nil {
		return c.JSON(http.StatusPreconditionRequired, res)
	}
	return c.JSON(http.StatusOK, res)
}

// NotImplemented answers dashboard sub-screens that have no behaviour yet.
func (h *DashboardHandler) NotImplemented(c echo.Context) error {
	return echo.NewHTTPError(http.StatusNotImplemented, "screen not available yet")
}
