package task

import "math"

// Entry phases: a task fits a day whole, or is split into a part on one day
// and a continuation on the next.
const (
	PhaseFull     = "full"
	PhasePart     = "part"
	PhaseContinue = "continue"
)

// DefaultDailyHours is the effort-hour capacity assumed per planning day.
const DefaultDailyHours = 8.0

// Entry is one row of a generated plan: a task's (possibly partial)
// allocation to a day.
type Entry struct {
	Day   int
	Title string
	Hours float64
	Phase string
	Score int
}

// Plan distributes tasks, in the given order, across fixed-capacity days
// using greedy first-fit against a single advancing day cursor. Tasks are
// never reordered or dropped; a task that overflows the current day is
// split across at most two days, with the continuation charged to the next
// day even when it exceeds a full day's capacity. Exactly filling a day
// advances the cursor an extra time, matching the behavior tools built on
// this planner already depend on. Empty input yields an empty plan.
func Plan(tasks []Task, dailyHours float64) []Entry {
	if len(tasks) == 0 {
		return nil
	}

	var entries []Entry
	day := 1
	remaining := dailyHours

	for _, t := range tasks {
		if t.Effort <= remaining {
			entries = append(entries, Entry{Day: day, Title: t.Title, Hours: t.Effort, Phase: PhaseFull, Score: t.Score})
			remaining -= t.Effort
		} else {
			entries = append(entries, Entry{Day: day, Title: t.Title, Hours: math.Min(remaining, t.Effort), Phase: PhasePart, Score: t.Score})
			left := t.Effort - remaining
			day++
			remaining = dailyHours
			entries = append(entries, Entry{Day: day, Title: t.Title, Hours: left, Phase: PhaseContinue, Score: t.Score})
			remaining -= left
		}
		if remaining <= 0 {
			day++
			remaining = dailyHours
		}
	}

	return entries
}
