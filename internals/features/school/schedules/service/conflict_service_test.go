package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/schedules/dto"
	"sekolahku_backend/internals/features/school/schedules/model"
)

func entry(day, start, end string, order int) model.ScheduleModel {
	return model.ScheduleModel{
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		LessonOrder: order,
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:45")
	require.NoError(t, err)
	assert.Equal(t, 9*60+45, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("0900")
	assert.Error(t, err)
}

func TestNewCandidateRejectsInvertedInterval(t *testing.T) {
	_, err := NewCandidate("MONDAY", "10:00", "09:00", 1)
	assert.Error(t, err)

	_, err = NewCandidate("MONDAY", "10:00", "10:00", 1)
	assert.Error(t, err, "zero-length slot is malformed")

	c, err := NewCandidate("MONDAY", "09:00", "09:45", 1)
	require.NoError(t, err)
	assert.Equal(t, Candidate{DayOfWeek: "MONDAY", Start: 540, End: 585, LessonOrder: 1}, c)
}

func TestHasConflict(t *testing.T) {
	existing := []model.ScheduleModel{
		entry("MONDAY", "09:00", "09:45", 1),
	}

	tests := []struct {
		name  string
		day   string
		start string
		end   string
		order int
		want  bool
	}{
		{"overlap mid-interval", "MONDAY", "09:30", "10:15", 2, true},
		{"back to back is free (half-open)", "MONDAY", "09:45", "10:30", 2, false},
		{"order clash without time overlap", "MONDAY", "11:00", "11:45", 1, true},
		{"same slot other day is free", "TUESDAY", "09:00", "09:45", 1, false},
		{"identical interval", "MONDAY", "09:00", "09:45", 3, true},
		{"candidate fully contains existing", "MONDAY", "08:30", "10:00", 4, true},
		{"candidate inside existing", "MONDAY", "09:10", "09:20", 4, true},
		{"ends exactly at existing start", "MONDAY", "08:00", "09:00", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, err := NewCandidate(tt.day, tt.start, tt.end, tt.order)
			require.NoError(t, err)
			got, err := HasConflict(existing, cand)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasConflictIndependentPerDay(t *testing.T) {
	existing := []model.ScheduleModel{
		entry("MONDAY", "09:00", "09:45", 1),
		entry("TUESDAY", "09:00", "09:45", 1),
	}

	cand, err := NewCandidate("WEDNESDAY", "09:00", "09:45", 1)
	require.NoError(t, err)
	got, err := HasConflict(existing, cand)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestWeekdayRank(t *testing.T) {
	week := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
	for i := 1; i < len(week); i++ {
		assert.Less(t, WeekdayRank(week[i-1]), WeekdayRank(week[i]))
	}
	assert.Equal(t, 0, WeekdayRank("FUNDAY"))
}

func TestSortTimetableWeekOrder(t *testing.T) {
	entries := []dto.ScheduleResponse{
		{DayOfWeek: "FRIDAY", LessonOrder: 1},
		{DayOfWeek: "SUNDAY", LessonOrder: 1},
		{DayOfWeek: "MONDAY", LessonOrder: 2},
		{DayOfWeek: "MONDAY", LessonOrder: 1},
	}

	SortTimetable(entries)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, fmt.Sprintf("%s#%d", e.DayOfWeek, e.LessonOrder))
	}
	// lexicographic ordering would have put FRIDAY first
	assert.Equal(t, []string{"MONDAY#1", "MONDAY#2", "FRIDAY#1", "SUNDAY#1"}, got)
}

func TestHasConflictBadStoredTime(t *testing.T) {
	existing := []model.ScheduleModel{
		entry("MONDAY", "garbage", "09:45", 1),
	}
	cand, err := NewCandidate("MONDAY", "10:00", "10:45", 2)
	require.NoError(t, err)

	got, err := HasConflict(existing, cand)
	assert.Error(t, err)
	assert.True(t, got, "unparseable rows must fail closed")
}
