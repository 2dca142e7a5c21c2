package memory

import (
	"context"

	"github.com/homeaid/care-portal/internal/core/domain"
)

// DefaultVisits is the schedule fixture in display order.
var DefaultVisits = []domain.Visit{
	{ID: "1", ClientName: "Sarah Johnson", CaregiverName: "Maria Garcia", Date: "Today", Time: "09:00 AM", Duration: "2 hours", Service: domain.ServiceMedication, Status: domain.VisitInProgress, Location: "123 Oak Street, City"},
	{ID: "2", ClientName: "Mike Davis", CaregiverName: "James Wilson", Date: "Today", Time: "11:00 AM", Duration: "3 hours", Service: domain.ServiceTherapy, Status: domain.VisitScheduled, Location: "456 Pine Avenue, Town"},
	{ID: "3", ClientName: "Emma Wilson", CaregiverName: "Anna Rodriguez", Date: "Today", Time: "02:00 PM", Duration: "1.5 hours", Service: domain.ServicePersonal, Status: domain.VisitScheduled, Location: "789 Elm Road, Village"},
	{ID: "4", ClientName: "John Smith", CaregiverName: "David Chen", Date: "Tomorrow", Time: "10:00 AM", Duration: "2 hours", Service: domain.ServiceMealPrep, Status: domain.VisitScheduled, Location: "321 Maple Drive, Borough"},
	{ID: "5", ClientName: "Sarah Johnson", CaregiverName: "Maria Garcia", Date: "Yesterday", Time: "09:00 AM", Duration: "2 hours", Service: domain.ServiceMedication, Status: domain.VisitCompleted, Location: "123 Oak Street, City"},
}

type ScheduleRepository struct {
	visits []domain.Visit
}

func NewScheduleRepository(visits []domain.Visit) *ScheduleRepository {
	return &ScheduleRepository{visits: append([]domain.Visit(nil), visits...)}
}

// List returns a copy so callers cannot reorder the fixture.
func (r *ScheduleRepository) List(context.Context) ([]domain.Visit, error) {
	return append([]domain.Visit(nil), r.visits...), nil
}

func (r *ScheduleRepository) FindByID(_ context.Context, id string) (*domain.Visit, error) {
	for _, v := range r.visits {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, domain.ErrVisitNotFound
}
