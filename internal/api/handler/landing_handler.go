package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/service"
)

// Landing returns the entry screen.
//
// @Summary      Landing screen
// @Tags         screens
// @Produce      json
// @Success      200  {object}  landingScreen
// @Router       / [get]
func Landing(c echo.Context) error {
	return c.JSON(http.StatusOK, landingScreen{
		Title:    "Home Aid",
		Subtitle: "Caring for your loved ones",
		Start: screenAction{
			Title:      "Let's Start",
			Navigation: service.Push(domain.DestinationLogin, sessionFrom(c)),
		},
		Footer: "Professional home care services",
	})
}
