// Package service holds the timetable conflict policy. A candidate entry is
// rejected when, on the same weekday in the same classroom, any existing
// entry has the same lesson order or overlaps it as a half-open interval
// (same end and start do NOT conflict). Weekdays are independent of each
// other; deletions never need a check.
package service

import (
	"fmt"
	"sort"
	"time"

	"sekolahku_backend/internals/features/school/schedules/dto"
	"sekolahku_backend/internals/features/school/schedules/model"
)

const clockLayout = "15:04"

// ParseClock turns "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

var weekdayRank = map[string]int{
	"MONDAY":    1,
	"TUESDAY":   2,
	"WEDNESDAY": 3,
	"THURSDAY":  4,
	"FRIDAY":    5,
	"SATURDAY":  6,
	"SUNDAY":    7,
}

// WeekdayRank returns the ISO-8601 position of the weekday, 0 for anything
// unrecognized.
func WeekdayRank(day string) int {
	return weekdayRank[day]
}

// SortTimetable orders entries Monday-first, then by lesson order within
// the day. The stored weekday strings sort lexicographically, so this
// cannot be left to the database.
func SortTimetable(entries []dto.ScheduleResponse) {
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := WeekdayRank(entries[i].DayOfWeek), WeekdayRank(entries[j].DayOfWeek)
		if ri != rj {
			return ri < rj
		}
		return entries[i].LessonOrder < entries[j].LessonOrder
	})
}

// Candidate is the normalized form of one entry under check.
type Candidate struct {
	DayOfWeek   string
	Start       int
	End         int
	LessonOrder int
}

// NewCandidate validates and normalizes raw request values. start >= end is
// malformed and rejected before any conflict check.
func NewCandidate(day, startTime, endTime string, order int) (Candidate, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return Candidate{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Candidate{}, err
	}
	if start >= end {
		return Candidate{}, fmt.Errorf("start time %s must be before end time %s", startTime, endTime)
	}
	return Candidate{DayOfWeek: day, Start: start, End: end, LessonOrder: order}, nil
}

// HasConflict reports whether the candidate collides with any existing entry
// of the same classroom. Existing rows with unparseable times count as
// conflicts rather than being silently ignored.
func HasConflict(existing []model.ScheduleModel, cand Candidate) (bool, error) {
	for _, e := range existing {
		if e.DayOfWeek != cand.DayOfWeek {
			continue
		}
		if e.LessonOrder == cand.LessonOrder {
			return true, nil
		}
		start, err := ParseClock(e.StartTime)
		if err != nil {
			return true, err
		}
		end, err := ParseClock(e.EndTime)
		if err != nil {
			return true, err
		}
		// half-open overlap
		if start < cand.End && end > cand.Start {
			return true, nil
		}
	}
	return false, nil
}
