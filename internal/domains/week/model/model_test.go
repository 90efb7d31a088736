package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostline/internal/domains/week/model"
)

func TestWeekContains(t *testing.T) {
	start := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC) // a Friday
	week := model.Week{
		ID:        "week-1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{
			name: "starting Friday midnight",
			day:  start,
			want: true,
		},
		{
			name: "midweek",
			day:  start.AddDate(0, 0, 3).Add(10 * time.Hour),
			want: true,
		},
		{
			name: "closing Thursday afternoon",
			day:  start.AddDate(0, 0, 6).Add(15 * time.Hour),
			want: true,
		},
		{
			name: "last instant of the week",
			day:  start.AddDate(0, 0, 7).Add(-time.Nanosecond),
			want: true,
		},
		{
			name: "next Friday midnight",
			day:  start.AddDate(0, 0, 7),
			want: false,
		},
		{
			name: "before the week begins",
			day:  start.Add(-time.Second),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, week.Contains(tt.day))
		})
	}
}

func TestBedTrackingTargetMet(t *testing.T) {
	tracking := model.BedTracking{WeekID: "week-1", BedsNeeded: 5, BedsConfirmed: 5}
	assert.True(t, tracking.TargetMet())

	tracking.BedsConfirmed = 4
	assert.False(t, tracking.TargetMet())

	tracking.BedsNeeded = 0
	assert.False(t, tracking.TargetMet())
}
