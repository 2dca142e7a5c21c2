package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteTablesAreTotal(t *testing.T) {
	for _, s := range VisitStatuses {
		_, ok := visitStatusColors[s]
		require.True(t, ok, "visit status %q has no colour", s)
	}
	for _, p := range Priorities {
		_, ok := priorityColors[p]
		require.True(t, ok, "priority %q has no colour", p)
	}
	for _, k := range ActivityKinds {
		_, ok := activityColors[k]
		require.True(t, ok, "activity kind %q has no colour", k)
	}
	for _, s := range Services {
		_, ok := serviceIcons[s]
		require.True(t, ok, "service %q has no icon", s)
	}
}

func TestVisitStatusColor(t *testing.T) {
	assert.Equal(t, ColorBlue, VisitScheduled.Color())
	assert.Equal(t, ColorOrange, VisitInProgress.Color())
	assert.Equal(t, ColorGreen, VisitCompleted.Color())
	assert.Equal(t, ColorRed, VisitCancelled.Color())
	assert.Equal(t, ColorNeutral, VisitStatus("Paused").Color())
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, ColorRed, PriorityHigh.Color())
	assert.Equal(t, ColorOrange, PriorityMedium.Color())
	assert.Equal(t, ColorGreen, PriorityLow.Color())
	assert.Equal(t, ColorNeutral, Priority("Urgent").Color())
}

func TestActivityColorFallsBackToInfo(t *testing.T) {
	assert.Equal(t, ColorGreen, ActivitySuccess.Color())
	assert.Equal(t, ColorOrange, ActivityWarning.Color())
	assert.Equal(t, ColorBlue, ActivityKind("audit").Color())
}

func TestServiceIcon(t *testing.T) {
	assert.Equal(t, "pills.fill", ServiceMedication.Icon())
	assert.Equal(t, "fork.knife", ServiceMealPrep.Icon())
	assert.Equal(t, "heart.fill", Service("Companionship").Icon())
}

func TestChangeColor(t *testing.T) {
	assert.Equal(t, ColorGreen, ChangeColor("+12%"))
	assert.Equal(t, ColorRed, ChangeColor("-3%"))
}
