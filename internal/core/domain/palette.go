package domain

import "strings"

// Color is a hex colour string.
type Color string

const (
	ColorGreen  Color = "#4CAF50"
	ColorBlue   Color = "#2196F3"
	ColorOrange Color = "#FF9800"
	ColorRed    Color = "#F44336"
	ColorPurple Color = "#9C27B0"
	ColorSlate  Color = "#607D8B"
	ColorPink   Color = "#E91E63"
	ColorGold   Color = "#FFD700"

	// ColorNeutral is used for values outside a closed category.
	ColorNeutral Color = "#9E9E9E"
)

// Each table covers every value of its category (see palette_test.go).

var visitStatusColors = map[VisitStatus]Color{
	VisitScheduled:  ColorBlue,
	VisitInProgress: ColorOrange,
	VisitCompleted:  ColorGreen,
	VisitCancelled:  ColorRed,
}

var priorityColors = map[Priority]Color{
	PriorityHigh:   ColorRed,
	PriorityMedium: ColorOrange,
	PriorityLow:    ColorGreen,
}

var activityColors = map[ActivityKind]Color{
	ActivitySuccess: ColorGreen,
	ActivityWarning: ColorOrange,
	ActivityInfo:    ColorBlue,
}

const defaultServiceIcon = "heart.fill"

var serviceIcons = map[Service]string{
	ServiceMedication: "pills.fill",
	ServiceTherapy:    "figure.walk",
	ServicePersonal:   "person.fill",
	ServiceMealPrep:   "fork.knife",
}

func (s VisitStatus) Color() Color {
	if c, ok := visitStatusColors[s]; ok {
		return c
	}
	return ColorNeutral
}

func (p Priority) Color() Color {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return ColorNeutral
}

// Color of an activity. Unknown kinds render as info.
func (k ActivityKind) Color() Color {
	if c, ok := activityColors[k]; ok {
		return c
	}
	return activityColors[ActivityInfo]
}

func (s Service) Icon() string {
	if icon, ok := serviceIcons[s]; ok {
		return icon
	}
	return defaultServiceIcon
}

// ChangeColor colours a trend badge: growth green, decline red.
func ChangeColor(change string) Color {
	if strings.HasPrefix(change, "+") {
		return ColorGreen
	}
	return ColorRed
}
