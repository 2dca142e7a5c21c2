package ports

import (
	"context"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// DashboardRepository serves the static content of each role dashboard.
type DashboardRepository interface {
	Content(ctx context.Context, role domain.Role) (*domain.DashboardContent, error)
}

// StatView is a stat with the colour of its change badge.
type StatView struct {
	domain.Stat
	ChangeColor domain.Color `json:"change_color,omitempty"`
}

// ActionView is a dashboard tile with the navigation it triggers.
type ActionView struct {
	domain.Action
	Navigation domain.Navigation `json:"navigation"`
}

type TaskView struct {
	domain.Task
	Color domain.Color `json:"color"`
}

type VisitView struct {
	domain.ProviderVisit
	StatusColor domain.Color `json:"status_color"`
	ServiceIcon string       `json:"service_icon"`
	Startable   bool         `json:"startable"`
}

type ActivityView struct {
	domain.Activity
	Color domain.Color `json:"color"`
}

// DashboardView is a rendered role dashboard.
type DashboardView struct {
	Role         domain.Role               `json:"role"`
	Title        string                    `json:"title"`
	Greeting     string                    `json:"greeting"`
	User         *domain.Profile           `json:"user,omitempty"`
	Stats        []StatView                `json:"stats"`
	ActionsTitle string                    `json:"actions_title"`
	Actions      []ActionView              `json:"actions"`
	QuickTitle   string                    `json:"quick_title,omitempty"`
	Quick        []ActionView              `json:"quick,omitempty"`
	Tasks        []TaskView                `json:"tasks,omitempty"`
	Visits       []VisitView               `json:"visits,omitempty"`
	Contacts     []domain.EmergencyContact `json:"contacts,omitempty"`
	Activities   []ActivityView            `json:"activities"`
	Logout       domain.Prompt             `json:"logout"`
}

// Confirmation is the answer to a confirmation-gated action: a prompt while
// unconfirmed, a navigation once confirmed.
type Confirmation struct {
	Prompt     *domain.Prompt     `json:"prompt,omitempty"`
	Navigation *domain.Navigation `json:"navigation,omitempty"`
}

type DashboardService interface {
	Build(ctx context.Context, role domain.Role, sess *domain.Session) (*DashboardView, error)
	StartVisit(ctx context.Context, sess *domain.Session, visitID string, confirmed bool) (Confirmation, error)
}
