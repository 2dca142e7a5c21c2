package handler

import (
	"github.com/homeaid/care-portal/internal/core/domain"
)

// loginRequest deliberately has no required tags: empty fields must reach the
// authenticator so it can answer with the missing-field alert.
type loginRequest struct {
	ScreenID string `json:"screen_id" validate:"omitempty,uuid4"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Navigation *domain.Navigation `json:"navigation,omitempty"`
	User       *domain.Profile    `json:"user,omitempty"`
	Discarded  bool               `json:"discarded,omitempty"`
}

type screenResponse struct {
	ScreenID string `json:"screen_id"`
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

type scheduleRequest struct {
	Date   string `query:"date" validate:"omitempty,oneof=Today Tomorrow Yesterday All"`
	Status string `query:"status" validate:"omitempty,oneof=all scheduled completed"`
}

type visitResponse struct {
	domain.Visit
	StatusColor domain.Color `json:"status_color"`
	ServiceIcon string       `json:"service_icon"`
}

type screenAction struct {
	Title      string            `json:"title"`
	Navigation domain.Navigation `json:"navigation"`
}

type landingScreen struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Start    screenAction `json:"start"`
	Footer   string       `json:"footer"`
}

type demoAccount struct {
	Role  domain.Role  `json:"role"`
	Label string       `json:"label"`
	Color domain.Color `json:"color"`
}

type loginScreen struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	DemoTitle    string        `json:"demo_title,omitempty"`
	DemoAccounts []demoAccount `json:"demo_accounts,omitempty"`
	Footer       string        `json:"footer"`
}

// errorBody documents the error envelope rendered by the API error handler.
type errorBody struct {
	Error string `json:"error"`
	Title string `json:"title"`
}
