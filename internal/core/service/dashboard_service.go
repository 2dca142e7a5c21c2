package service

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/homeaid/care-portal/internal/core/domain"
	"github.com/homeaid/care-portal/internal/core/ports"
)

type dashboardService struct {
	repo ports.DashboardRepository
}

func NewDashboardService(repo ports.DashboardRepository) ports.DashboardService {
	return &dashboardService{repo: repo}
}

// Build renders a role dashboard. A missing session, or one belonging to a
// different role, still renders with the generic greeting.
func (s *dashboardService) Build(ctx context.Context, role domain.Role, sess *domain.Session) (*ports.DashboardView, error) {
	if _, err := RouteFor(domain.Credential{Role: role}); err != nil {
		return nil, err
	}

	content, err := s.repo.Content(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("load %s dashboard: %w", role, err)
	}

	view := &ports.DashboardView{
		Role:         role,
		Title:        content.Title,
		Greeting:     "Welcome back, " + DisplayName(role, sess),
		ActionsTitle: content.ActionsTitle,
		QuickTitle:   content.QuickTitle,
		Contacts:     content.Contacts,
		Logout:       domain.LogoutPrompt,
	}
	if sess != nil {
		p := sess.User.Profile()
		view.User = &p
	}

	view.Stats = make([]ports.StatView, len(content.Stats))
	for i, st := range content.Stats {
		view.Stats[i] = ports.StatView{Stat: st}
		if st.Change != "" {
			view.Stats[i].ChangeColor = domain.ChangeColor(st.Change)
		}
	}

	view.Actions = actionViews(content.Actions, sess)
	view.Quick = actionViews(content.Quick, sess)

	for _, t := range content.Tasks {
		view.Tasks = append(view.Tasks, ports.TaskView{Task: t, Color: t.Priority.Color()})
	}
	for _, v := range content.Visits {
		view.Visits = append(view.Visits, ports.VisitView{
			ProviderVisit: v,
			StatusColor:   v.Status.Color(),
			ServiceIcon:   v.Service.Icon(),
			Startable:     v.Startable(),
		})
	}

	view.Activities = make([]ports.ActivityView, len(content.Activities))
	for i, a := range content.Activities {
		view.Activities[i] = ports.ActivityView{Activity: a, Color: a.Kind.Color()}
	}

	return view, nil
}

// StartVisit asks for confirmation, then pushes the provider's visit screen.
func (s *dashboardService) StartVisit(ctx context.Context, sess *domain.Session, visitID string, confirmed bool) (ports.Confirmation, error) {
	content, err := s.repo.Content(ctx, domain.RoleProvider)
	if err != nil {
		return ports.Confirmation{}, fmt.Errorf("load provider dashboard: %w", err)
	}

	var visit *domain.ProviderVisit
	for i := range content.Visits {
		if content.Visits[i].ID == visitID {
			visit = &content.Visits[i]
			break
		}
	}
	if visit == nil {
		return ports.Confirmation{}, domain.ErrVisitNotFound
	}
	if !visit.Startable() {
		return ports.Confirmation{}, fmt.Errorf("%w: status is %s", domain.ErrVisitNotStartable, visit.Status)
	}

	if !confirmed {
		p := domain.StartVisitPrompt(visit.Client)
		return ports.Confirmation{Prompt: &p}, nil
	}

	nav := Push(domain.DestinationProviderDashboard+domain.Destination("/visit/"+visit.ID), sess)
	return ports.Confirmation{Navigation: &nav}, nil
}

// DisplayName is the session user's name when the session belongs to role,
// otherwise the title-cased role.
func DisplayName(role domain.Role, sess *domain.Session) string {
	if sess != nil && sess.User.Role == role && sess.User.Name != "" {
		return sess.User.Name
	}
	return cases.Title(language.English).String(string(role))
}

func actionViews(actions []domain.Action, sess *domain.Session) []ports.ActionView {
	if actions == nil {
		return nil
	}
	out := make([]ports.ActionView, len(actions))
	for i, a := range actions {
		out[i] = ports.ActionView{Action: a, Navigation: Push(a.Route, sess)}
	}
	return out
}
