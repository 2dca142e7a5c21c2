package domain

// VisitStatus is the lifecycle state of a care visit.
type VisitStatus string

const (
	VisitScheduled  VisitStatus = "Scheduled"
	VisitInProgress VisitStatus = "In Progress"
	VisitCompleted  VisitStatus = "Completed"
	VisitCancelled  VisitStatus = "Cancelled"
)

// VisitStatuses lists every visit status.
var VisitStatuses = []VisitStatus{VisitScheduled, VisitInProgress, VisitCompleted, VisitCancelled}

// Service is the kind of care delivered during a visit.
type Service string

const (
	ServiceMedication Service = "Medication Management"
	ServiceTherapy    Service = "Physical Therapy"
	ServicePersonal   Service = "Personal Care"
	ServiceMealPrep   Service = "Meal Preparation"
)

// Services lists every known service.
var Services = []Service{ServiceMedication, ServiceTherapy, ServicePersonal, ServiceMealPrep}

// Visit is one scheduled caregiver visit on the schedule screen.
type Visit struct {
	ID            string      `json:"id"`
	ClientName    string      `json:"client_name"`
	CaregiverName string      `json:"caregiver_name"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Duration      string      `json:"duration"`
	Service       Service     `json:"service"`
	Status        VisitStatus `json:"status"`
	Location      string      `json:"location"`
}

// DateSelector picks visits by date label. DateAll matches every visit.
type DateSelector string

const (
	DateToday     DateSelector = "Today"
	DateTomorrow  DateSelector = "Tomorrow"
	DateYesterday DateSelector = "Yesterday"
	DateAll       DateSelector = "All"
)

// DateOptions is the order the schedule screen offers date selectors in.
var DateOptions = []DateSelector{DateToday, DateTomorrow, DateYesterday, DateAll}

func (d DateSelector) Matches(v Visit) bool {
	return d == DateAll || string(d) == v.Date
}

// StatusSelector picks visits by coarse status group.
type StatusSelector string

const (
	StatusAll       StatusSelector = "all"
	StatusScheduled StatusSelector = "scheduled"
	StatusCompleted StatusSelector = "completed"
)

// StatusOption is a selectable status filter with its label.
type StatusOption struct {
	Key   StatusSelector `json:"key"`
	Label string         `json:"label"`
}

var StatusOptions = []StatusOption{
	{Key: StatusAll, Label: "All"},
	{Key: StatusScheduled, Label: "Scheduled"},
	{Key: StatusCompleted, Label: "Completed"},
}

// Valid reports whether s is one of the three selectors.
func (s StatusSelector) Valid() bool {
	switch s {
	case StatusAll, StatusScheduled, StatusCompleted:
		return true
	}
	return false
}

// Matches treats "scheduled" as anything not yet finished: Scheduled or In Progress.
func (s StatusSelector) Matches(v Visit) bool {
	switch s {
	case StatusAll:
		return true
	case StatusScheduled:
		return v.Status == VisitScheduled || v.Status == VisitInProgress
	case StatusCompleted:
		return v.Status == VisitCompleted
	}
	return false
}
