package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/api/metrics"
	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

type ScheduleHandler struct {
	schedule ports.ScheduleService
}

func NewScheduleHandler(schedule ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// List renders the schedule screen filtered by date and status.
//
// @Summary      Schedule
// @Tags         schedule
// @Produce      json
// @Param        date    query     string  false  "Today (default), Tomorrow, Yesterday or All"
// @Param        status  query     string  false  "all (default), scheduled or completed"
// @Success      200     {object}  ports.ScheduleScreen
// @Failure      400     {object}  errorBody
// @Router       /schedule [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	screen, err := h.schedule.Screen(c.Request().Context(), ports.ScheduleQuery{
		Date:   domain.DateSelector(req.Date),
		Status: domain.StatusSelector(req.Status),
	}, sessionFrom(c))
	if err != nil {
		return err
	}

	metrics.ScheduleQueriesTotal.WithLabelValues(string(screen.Date), string(screen.Status)).Inc()
	return c.JSON(http.StatusOK, screen)
}

// Get returns a single visit.
//
// @Summary      Visit detail
// @Tags         schedule
// @Produce      json
// @Param        id   path      string  true  "Visit id"
// @Success      200  {object}  visitResponse
// @Failure      404  {object}  errorBody
// @Router       /schedule/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	v, err := h.schedule.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visitResponse{
		Visit:       *v,
		StatusColor: v.Status.Color(),
		ServiceIcon: v.Service.Icon(),
	})
}
