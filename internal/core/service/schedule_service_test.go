package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

type stubScheduleRepo struct {
	visits []domain.Visit
	err    error
}

func (r *stubScheduleRepo) List(context.Context) ([]domain.Visit, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Visit(nil), r.visits...), nil
}

func (r *stubScheduleRepo) FindByID(_ context.Context, id string) (*domain.Visit, error) {
	for _, v := range r.visits {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, domain.ErrVisitNotFound
}

func fixtureVisits() []domain.Visit {
	return []domain.Visit{
		{ID: "1", ClientName: "Sarah Johnson", Date: "Today", Service: domain.ServiceMedication, Status: domain.VisitInProgress},
		{ID: "2", ClientName: "Mike Davis", Date: "Today", Service: domain.ServiceTherapy, Status: domain.VisitScheduled},
		{ID: "3", ClientName: "Emma Wilson", Date: "Today", Service: domain.ServicePersonal, Status: domain.VisitScheduled},
		{ID: "4", ClientName: "John Smith", Date: "Tomorrow", Service: domain.ServiceMealPrep, Status: domain.VisitScheduled},
		{ID: "5", ClientName: "Sarah Johnson", Date: "Yesterday", Service: domain.ServiceMedication, Status: domain.VisitCompleted},
	}
}

func ids(visits []domain.Visit) []string {
	out := make([]string, len(visits))
	for i, v := range visits {
		out[i] = v.ID
	}
	return out
}

func TestFilterVisits(t *testing.T) {
	visits := fixtureVisits()

	cases := []struct {
		date   domain.DateSelector
		status domain.StatusSelector
		want   []string
	}{
		{domain.DateToday, domain.StatusScheduled, []string{"1", "2", "3"}},
		{domain.DateToday, domain.StatusCompleted, []string{}},
		{domain.DateToday, domain.StatusAll, []string{"1", "2", "3"}},
		{domain.DateAll, domain.StatusCompleted, []string{"5"}},
		{domain.DateAll, domain.StatusAll, []string{"1", "2", "3", "4", "5"}},
		{domain.DateTomorrow, domain.StatusScheduled, []string{"4"}},
		{domain.DateYesterday, domain.StatusScheduled, []string{}},
	}
	for _, tc := range cases {
		got := FilterVisits(visits, tc.date, tc.status)
		assert.Equal(t, tc.want, ids(got), "date=%s status=%s", tc.date, tc.status)
	}
}

func TestFilterVisits_IsConjunctionOfSelectors(t *testing.T) {
	visits := fixtureVisits()
	for _, d := range domain.DateOptions {
		for _, opt := range domain.StatusOptions {
			got := FilterVisits(visits, d, opt.Key)
			byDate := FilterVisits(visits, d, domain.StatusAll)
			byBoth := FilterVisits(byDate, domain.DateAll, opt.Key)
			assert.Equal(t, ids(byBoth), ids(got))
		}
	}
}

func TestScheduleService_FilterDefaults(t *testing.T) {
	svc := NewScheduleService(&stubScheduleRepo{visits: fixtureVisits()})

	got, err := svc.Filter(context.Background(), ports.ScheduleQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestScheduleService_FilterRejectsUnknownSelectors(t *testing.T) {
	svc := NewScheduleService(&stubScheduleRepo{visits: fixtureVisits()})

	_, err := svc.Filter(context.Background(), ports.ScheduleQuery{Status: "pending"})
	assert.True(t, errors.Is(err, domain.ErrInvalidSelector))

	_, err = svc.Filter(context.Background(), ports.ScheduleQuery{Date: "Next week"})
	assert.True(t, errors.Is(err, domain.ErrInvalidSelector))
}

func TestScheduleService_FilterWrapsRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewScheduleService(&stubScheduleRepo{err: boom})

	_, err := svc.Filter(context.Background(), ports.ScheduleQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestScheduleService_Get(t *testing.T) {
	svc := NewScheduleService(&stubScheduleRepo{visits: fixtureVisits()})

	v, err := svc.Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", v.ClientName)

	_, err = svc.Get(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrVisitNotFound)
}

func TestScheduleService_Screen(t *testing.T) {
	svc := NewScheduleService(&stubScheduleRepo{visits: fixtureVisits()})
	sess := &domain.Session{User: providerCred, Token: "tok-1"}

	screen, err := svc.Screen(context.Background(), ports.ScheduleQuery{Date: domain.DateAll, Status: domain.StatusCompleted}, sess)
	require.NoError(t, err)

	assert.Equal(t, "Schedule", screen.Title)
	assert.Equal(t, domain.DateAll, screen.Date)
	assert.Equal(t, domain.StatusCompleted, screen.Status)
	assert.Len(t, screen.DateOptions, 4)
	assert.Len(t, screen.StatusOptions, 3)
	assert.Equal(t, domain.Navigation{Destination: "/schedule/new", Session: "tok-1"}, screen.AddVisit)

	require.Len(t, screen.Items, 1)
	item := screen.Items[0]
	assert.Equal(t, domain.ColorGreen, item.StatusColor)
	assert.Equal(t, "pills.fill", item.ServiceIcon)
	assert.Equal(t, domain.Navigation{Destination: "/schedule/5", Session: "tok-1"}, item.Navigation)
}
