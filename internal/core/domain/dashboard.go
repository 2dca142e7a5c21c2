package domain

// Stat is a headline number on a dashboard. Change is a signed percentage
// such as "+12%" and is empty when the dashboard shows no trend.
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Icon   string `json:"icon"`
	Color  Color  `json:"color"`
	Change string `json:"change,omitempty"`
}

// Action is a dashboard tile that navigates to a sub-screen.
type Action struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Icon     string      `json:"icon"`
	Route    Destination `json:"route"`
	Color    Color       `json:"color,omitempty"`
}

// ActivityKind classifies an activity feed entry.
type ActivityKind string

const (
	ActivityInfo    ActivityKind = "info"
	ActivitySuccess ActivityKind = "success"
	ActivityWarning ActivityKind = "warning"
)

var ActivityKinds = []ActivityKind{ActivityInfo, ActivitySuccess, ActivityWarning}

type Activity struct {
	ID   int          `json:"id"`
	Text string       `json:"text"`
	Time string       `json:"time"`
	Kind ActivityKind `json:"type"`
}

// Priority ranks manager tasks.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

type Task struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Due      string   `json:"due"`
}

// ProviderVisit is an entry of a provider's schedule for the day.
type ProviderVisit struct {
	ID       string      `json:"id"`
	Client   string      `json:"client"`
	Time     string      `json:"time"`
	Duration string      `json:"duration"`
	Service  Service     `json:"service"`
	Status   VisitStatus `json:"status"`
}

// Startable reports whether the provider may start this visit.
func (v ProviderVisit) Startable() bool {
	return v.Status == VisitScheduled
}

type EmergencyContact struct {
	Label string `json:"label"`
	Phone string `json:"phone"`
	Color Color  `json:"color"`
}

// DashboardContent is the static material a role dashboard is built from.
// Sections a role does not show stay nil.
type DashboardContent struct {
	Role         Role
	Title        string
	Stats        []Stat
	ActionsTitle string
	Actions      []Action
	QuickTitle   string
	Quick        []Action
	Tasks        []Task
	Visits       []ProviderVisit
	Contacts     []EmergencyContact
	Activities   []Activity
}
