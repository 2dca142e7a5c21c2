package memory

import (
	"context"
	"fmt"

	"github.com/homeaid/care-portal/internal/core/domain"
)

var adminContent = domain.DashboardContent{
	Role:  domain.RoleAdmin,
	Title: "Admin Dashboard",
	Stats: []domain.Stat{
		{Title: "Total Clients", Value: "156", Icon: "person.2.fill", Color: domain.ColorGreen, Change: "+12%"},
		{Title: "Active Caregivers", Value: "89", Icon: "heart.fill", Color: domain.ColorBlue, Change: "+5%"},
		{Title: "Monthly Revenue", Value: "$45,230", Icon: "dollarsign.circle.fill", Color: domain.ColorOrange, Change: "+8%"},
		{Title: "Pending Tasks", Value: "23", Icon: "exclamationmark.triangle.fill", Color: domain.ColorRed, Change: "-3%"},
	},
	ActionsTitle: "Administrative Actions",
	Actions: []domain.Action{
		{Title: "Manage Users", Icon: "person.3.fill", Route: "/admin/users", Color: domain.ColorGreen},
		{Title: "System Settings", Icon: "gearshape.fill", Route: "/admin/settings", Color: domain.ColorBlue},
		{Title: "Financial Reports", Icon: "chart.bar.fill", Route: "/admin/finance", Color: domain.ColorOrange},
		{Title: "Audit Logs", Icon: "doc.text.fill", Route: "/admin/audit", Color: domain.ColorPurple},
		{Title: "Client Management", Icon: "person.2.circle.fill", Route: "/admin/clients", Color: domain.ColorSlate},
		{Title: "Caregiver Management", Icon: "heart.circle.fill", Route: "/admin/caregivers", Color: domain.ColorPink},
	},
	QuickTitle: "Quick Access",
	Quick: []domain.Action{
		{Title: "Analytics", Subtitle: "View detailed insights", Icon: "chart.line.uptrend.xyaxis", Route: "/admin/analytics"},
		{Title: "Notifications", Subtitle: "System alerts & messages", Icon: "bell.fill", Route: "/admin/notifications"},
	},
	Activities: []domain.Activity{
		{ID: 1, Text: "New client registration: John Smith", Time: "2 min ago", Kind: domain.ActivityInfo},
		{ID: 2, Text: "System backup completed", Time: "15 min ago", Kind: domain.ActivitySuccess},
		{ID: 3, Text: "Caregiver performance review scheduled", Time: "1 hour ago", Kind: domain.ActivityWarning},
		{ID: 4, Text: "Monthly financial report generated", Time: "2 hours ago", Kind: domain.ActivitySuccess},
		{ID: 5, Text: "User access permissions updated", Time: "3 hours ago", Kind: domain.ActivityInfo},
	},
}

var managerContent = domain.DashboardContent{
	Role:  domain.RoleManager,
	Title: "Manager Dashboard",
	Stats: []domain.Stat{
		{Title: "Active Clients", Value: "24", Icon: "person.2.fill", Color: domain.ColorGreen},
		{Title: "Caregivers", Value: "18", Icon: "heart.fill", Color: domain.ColorBlue},
		{Title: "Today's Visits", Value: "12", Icon: "calendar", Color: domain.ColorOrange},
		{Title: "Pending Tasks", Value: "8", Icon: "exclamationmark.triangle.fill", Color: domain.ColorRed},
	},
	ActionsTitle: "Management Actions",
	Actions: []domain.Action{
		{Title: "Client Management", Icon: "person.2.circle.fill", Route: "/manager/clients", Color: domain.ColorGreen},
		{Title: "Caregiver Management", Icon: "heart.circle.fill", Route: "/manager/caregivers", Color: domain.ColorBlue},
		{Title: "Schedule Management", Icon: "calendar.badge.plus", Route: "/manager/schedule", Color: domain.ColorOrange},
		{Title: "Quality Assurance", Icon: "checkmark.shield.fill", Route: "/manager/quality", Color: domain.ColorPurple},
		{Title: "Reports & Analytics", Icon: "chart.bar.fill", Route: "/manager/reports", Color: domain.ColorSlate},
		{Title: "Communication", Icon: "message.fill", Route: "/manager/communication", Color: domain.ColorPink},
	},
	Tasks: []domain.Task{
		{ID: 1, Title: "Review caregiver performance", Priority: domain.PriorityHigh, Due: "Today"},
		{ID: 2, Title: "Client satisfaction survey", Priority: domain.PriorityMedium, Due: "Tomorrow"},
		{ID: 3, Title: "Schedule conflict resolution", Priority: domain.PriorityHigh, Due: "Today"},
		{ID: 4, Title: "Monthly report preparation", Priority: domain.PriorityMedium, Due: "This week"},
	},
	QuickTitle: "Quick Actions",
	Quick: []domain.Action{
		{Title: "Schedule Visit", Icon: "plus.circle.fill", Route: "/manager/schedule/new"},
		{Title: "Assign Caregiver", Icon: "person.2.circle.fill", Route: "/manager/assign"},
	},
	Activities: []domain.Activity{
		{ID: 1, Text: "New client assigned to Maria Garcia", Time: "5 min ago", Kind: domain.ActivityInfo},
		{ID: 2, Text: "Caregiver performance review completed", Time: "1 hour ago", Kind: domain.ActivitySuccess},
		{ID: 3, Text: "Schedule updated for Sarah Johnson", Time: "2 hours ago", Kind: domain.ActivityInfo},
		{ID: 4, Text: "Quality check scheduled for tomorrow", Time: "3 hours ago", Kind: domain.ActivityWarning},
	},
}

var providerContent = domain.DashboardContent{
	Role:  domain.RoleProvider,
	Title: "Provider Dashboard",
	Stats: []domain.Stat{
		{Title: "Today's Visits", Value: "4", Icon: "calendar", Color: domain.ColorGreen},
		{Title: "Active Clients", Value: "3", Icon: "person.2.fill", Color: domain.ColorBlue},
		{Title: "Hours This Week", Value: "28", Icon: "clock.fill", Color: domain.ColorOrange},
		{Title: "Rating", Value: "4.8", Icon: "star.fill", Color: domain.ColorGold},
	},
	Visits: []domain.ProviderVisit{
		{ID: "1", Client: "Sarah Johnson", Time: "09:00 AM", Duration: "2 hours", Service: domain.ServiceMedication, Status: domain.VisitInProgress},
		{ID: "2", Client: "Mike Davis", Time: "11:00 AM", Duration: "3 hours", Service: domain.ServiceTherapy, Status: domain.VisitScheduled},
		{ID: "3", Client: "Emma Wilson", Time: "02:00 PM", Duration: "1.5 hours", Service: domain.ServicePersonal, Status: domain.VisitScheduled},
		{ID: "4", Client: "John Smith", Time: "04:00 PM", Duration: "2 hours", Service: domain.ServiceMealPrep, Status: domain.VisitScheduled},
	},
	ActionsTitle: "Quick Actions",
	Actions: []domain.Action{
		{Title: "Start Visit", Icon: "play.circle.fill", Route: "/provider/start-visit", Color: domain.ColorGreen},
		{Title: "End Visit", Icon: "stop.circle.fill", Route: "/provider/end-visit", Color: domain.ColorRed},
		{Title: "Report Issue", Icon: "exclamationmark.triangle.fill", Route: "/provider/report", Color: domain.ColorOrange},
		{Title: "Client Notes", Icon: "note.text", Route: "/provider/notes", Color: domain.ColorBlue},
	},
	Contacts: []domain.EmergencyContact{
		{Label: "Emergency", Phone: "911", Color: domain.ColorRed},
		{Label: "Supervisor", Phone: "(555) 123-4567", Color: domain.ColorOrange},
		{Label: "Support", Phone: "(555) 987-6543", Color: domain.ColorBlue},
	},
	Activities: []domain.Activity{
		{ID: 1, Text: "Completed medication management for Sarah Johnson", Time: "30 min ago", Kind: domain.ActivitySuccess},
		{ID: 2, Text: "Started physical therapy session with Mike Davis", Time: "1 hour ago", Kind: domain.ActivityInfo},
		{ID: 3, Text: "Updated client notes for Emma Wilson", Time: "2 hours ago", Kind: domain.ActivityInfo},
		{ID: 4, Text: "Reported minor issue with equipment", Time: "3 hours ago", Kind: domain.ActivityWarning},
	},
}

// DashboardRepository serves the fixed dashboard content of each role.
type DashboardRepository struct {
	content map[domain.Role]domain.DashboardContent
}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{content: map[domain.Role]domain.DashboardContent{
		domain.RoleAdmin:    adminContent,
		domain.RoleManager:  managerContent,
		domain.RoleProvider: providerContent,
	}}
}

func (r *DashboardRepository) Content(_ context.Context, role domain.Role) (*domain.DashboardContent, error) {
	c, ok := r.content[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnroutableRole, role)
	}
	return &c, nil
}
