package domain

// Destination is a named route of the screen API.
type Destination string

const (
	DestinationLanding  Destination = "/"
	DestinationLogin    Destination = "/login"
	DestinationSchedule Destination = "/schedule"

	DestinationAdminDashboard    Destination = "/admin"
	DestinationManagerDashboard  Destination = "/manager"
	DestinationProviderDashboard Destination = "/provider"
)

// Navigation is an instruction for the client to move to another screen.
//
// Replace means the current entry is swapped out instead of pushed, so back
// navigation cannot return to it. Session is the token the destination
// receives; empty means the destination is entered unauthenticated.
type Navigation struct {
	Destination Destination `json:"destination"`
	Replace     bool        `json:"replace"`
	Session     string      `json:"session,omitempty"`
}

// Prompt is a blocking yes/no confirmation shown before a destructive action.
type Prompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Cancel  string `json:"cancel"`
	Confirm string `json:"confirm"`
}

// LogoutPrompt guards logout on every dashboard.
var LogoutPrompt = Prompt{
	Title:   "Logout",
	Message: "Are you sure you want to logout?",
	Cancel:  "Cancel",
	Confirm: "Logout",
}

// StartVisitPrompt guards starting a provider visit.
func StartVisitPrompt(client string) Prompt {
	return Prompt{
		Title:   "Start Visit",
		Message: "Start visit with " + client + "?",
		Cancel:  "Cancel",
		Confirm: "Start",
	}
}
