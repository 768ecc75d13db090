package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StoreAvailability/pkg/ptr"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input  string
		want   Weekday
		wantOK bool
	}{
		{input: "monday", want: Monday, wantOK: true},
		{input: "  SATURDAY ", want: Saturday, wantOK: true},
		{input: "Sunday", want: Sunday, wantOK: true},
		{input: "holiday", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseWeekday(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-03-01 - воскресенье
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, want := range AllWeekdays {
		assert.Equal(t, want, WeekdayOf(start.AddDate(0, 0, i)))
		assert.Equal(t, i, want.Order())
	}
	assert.Equal(t, -1, Weekday("holiday").Order())
}

func TestDaySchedule_IsOpen(t *testing.T) {
	nine := types.MustTimeString("09:00")
	five := types.MustTimeString("17:00")

	tests := []struct {
		name     string
		schedule *DaySchedule
		want     bool
	}{
		{name: "regular hours", schedule: &DaySchedule{OpenTime: &nine, CloseTime: &five}, want: true},
		{name: "closed flag", schedule: &DaySchedule{IsClosed: true, OpenTime: &nine, CloseTime: &five}, want: false},
		{name: "missing open time", schedule: &DaySchedule{CloseTime: &five}, want: false},
		{name: "missing close time", schedule: &DaySchedule{OpenTime: &nine}, want: false},
		{name: "overnight hours", schedule: &DaySchedule{OpenTime: ptr.Ptr(types.MustTimeString("22:00")), CloseTime: ptr.Ptr(types.MustTimeString("02:00"))}, want: false},
		{name: "nil", schedule: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.schedule.IsOpen())
		})
	}
}

func TestWeeklySchedule_DaysSortedAndComplete(t *testing.T) {
	schedule := WeeklySchedule{
		Saturday: {IsClosed: true},
		Monday:   {IsClosed: true},
		Sunday:   {IsClosed: true},
	}

	entries := schedule.Days()

	assert.Equal(t, []Weekday{Sunday, Monday, Saturday}, []Weekday{entries[0].Day, entries[1].Day, entries[2].Day})
	assert.False(t, schedule.IsComplete())

	for _, day := range AllWeekdays {
		schedule[day] = DaySchedule{IsClosed: true}
	}
	assert.True(t, schedule.IsComplete())
}

func TestParseMode(t *testing.T) {
	mode, ok := ParseMode("")
	assert.True(t, ok)
	assert.Equal(t, ModePickup, mode)

	mode, ok = ParseMode(" Delivery ")
	assert.True(t, ok)
	assert.Equal(t, ModeDelivery, mode)

	_, ok = ParseMode("drone")
	assert.False(t, ok)
}

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "SW1A1AA", NormalizePostcode(" sw1a 1aa "))
	assert.Equal(t, 0, (&DeliveryZone{EstimatedMinutes: -5}).LeadMinutes())
	assert.Equal(t, 45, (&DeliveryZone{EstimatedMinutes: 45}).LeadMinutes())
}
