package service

import (
	"context"
	"fmt"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

// FilterVisits keeps the visits matching both selectors, preserving order.
func FilterVisits(visits []domain.Visit, date domain.DateSelector, status domain.StatusSelector) []domain.Visit {
	out := make([]domain.Visit, 0, len(visits))
	for _, v := range visits {
		if date.Matches(v) && status.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

type scheduleService struct {
	repo ports.ScheduleRepository
}

func NewScheduleService(repo ports.ScheduleRepository) ports.ScheduleService {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) Filter(ctx context.Context, q ports.ScheduleQuery) ([]domain.Visit, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}

	visits, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	return FilterVisits(visits, q.Date, q.Status), nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (*domain.Visit, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *scheduleService) Screen(ctx context.Context, q ports.ScheduleQuery, sess *domain.Session) (*ports.ScheduleScreen, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}

	visits, err := s.Filter(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ScheduleItem, len(visits))
	for i, v := range visits {
		items[i] = ports.ScheduleItem{
			Visit:       v,
			StatusColor: v.Status.Color(),
			ServiceIcon: v.Service.Icon(),
			Navigation:  Push(visitDestination(v.ID), sess),
		}
	}

	return &ports.ScheduleScreen{
		Title:         "Schedule",
		Date:          q.Date,
		Status:        q.Status,
		DateOptions:   domain.DateOptions,
		StatusOptions: domain.StatusOptions,
		AddVisit:      Push(domain.DestinationSchedule+"/new", sess),
		Items:         items,
	}, nil
}

func visitDestination(id string) domain.Destination {
	return domain.DestinationSchedule + domain.Destination("/"+id)
}

// normalizeQuery applies the screen defaults and rejects selectors outside
// the offered options.
func normalizeQuery(q ports.ScheduleQuery) (ports.ScheduleQuery, error) {
	if q.Date == "" {
		q.Date = domain.DateToday
	}
	if q.Status == "" {
		q.Status = domain.StatusAll
	}
	if !validDate(q.Date) {
		return q, fmt.Errorf("%w: date %q", domain.ErrInvalidSelector, q.Date)
	}
	if !q.Status.Valid() {
		return q, fmt.Errorf("%w: status %q", domain.ErrInvalidSelector, q.Status)
	}
	return q, nil
}

func validDate(d domain.DateSelector) bool {
	for _, opt := range domain.DateOptions {
		if d == opt {
			return true
		}
	}
	return false
}
