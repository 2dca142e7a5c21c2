package ports

import (
	"context"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// ScheduleRepository serves the visits shown on the schedule screen, in
// display order.
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.Visit, error)
	FindByID(ctx context.Context, id string) (*domain.Visit, error)
}

// ScheduleQuery carries the two selectors of the schedule screen. Empty
// selectors fall back to Today and all.
type ScheduleQuery struct {
	Date   domain.DateSelector
	Status domain.StatusSelector
}

// ScheduleItem is a visit row with its presentation and push navigation.
type ScheduleItem struct {
	domain.Visit
	StatusColor domain.Color      `json:"status_color"`
	ServiceIcon string            `json:"service_icon"`
	Navigation  domain.Navigation `json:"navigation"`
}

// ScheduleScreen is the rendered schedule screen.
type ScheduleScreen struct {
	Title         string                `json:"title"`
	Date          domain.DateSelector   `json:"date"`
	Status        domain.StatusSelector `json:"status"`
	DateOptions   []domain.DateSelector `json:"date_options"`
	StatusOptions []domain.StatusOption `json:"status_options"`
	AddVisit      domain.Navigation     `json:"add_visit"`
	Items         []ScheduleItem        `json:"items"`
}

type ScheduleService interface {
	Filter(ctx context.Context, q ScheduleQuery) ([]domain.Visit, error)
	Get(ctx context.Context, id string) (*domain.Visit, error)
	Screen(ctx context.Context, q ScheduleQuery, sess *domain.Session) (*ScheduleScreen, error)
}
