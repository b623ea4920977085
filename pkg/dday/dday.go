// Package dday classifies a date range against a caller-supplied "now"
// and derives the countdown label shown next to events and other
// date-bounded items ("종료", "D-Day", "D-3").
package dday

import (
	"fmt"
	"math"
	"time"
)

// Status is the coarse classification of a range relative to now.
// Start is not consulted: a range that has not begun yet still reports
// StatusOngoing, callers wanting "upcoming" compare against Start
// themselves.
type Status string

const (
	StatusOngoing    Status = "ongoing"
	StatusEndingSoon Status = "ending_soon"
	StatusEnded      Status = "ended"
)

// LabelEnded is the display token for a range whose end has passed.
const LabelEnded = "종료"

// Range is a start/end pair of instants. Start ≤ End is the caller's
// responsibility; output for an inverted range is unspecified.
type Range struct {
	Start time.Time
	End   time.Time
}

// Result pairs the coarse status with the countdown display label.
type Result struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
}

// Classify evaluates r against now. Now is a parameter rather than a
// clock read so the function stays pure under test.
func Classify(r Range, now time.Time) Result {
	if now.After(r.End) {
		return Result{Status: StatusEnded, Label: LabelEnded}
	}

	days := daysUntil(now, r.End)
	if days < 0 {
		return Result{Status: StatusEnded, Label: LabelEnded}
	}

	label := "D-Day"
	if days > 0 {
		label = fmt.Sprintf("D-%d", days)
	}

	status := StatusOngoing
	if r.End.Sub(now) <= 24*time.Hour {
		status = StatusEndingSoon
	}
	return Result{Status: status, Label: label}
}

// daysUntil counts whole calendar days from now's midnight to end's
// midnight. Rounding absorbs DST-shortened or -lengthened days.
func daysUntil(now, end time.Time) int {
	return int(math.Round(startOfDay(end).Sub(startOfDay(now)).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
