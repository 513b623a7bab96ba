package task

import (
	"math"
	"sort"
	"time"
)

// Weights holds the three scoring multipliers. They are supplied externally
// (config file or flags) and read fresh on every scoring pass.
type Weights struct {
	Importance float64
	Urgency    float64
	Effort     float64
}

// DefaultWeights returns the default scoring multipliers.
func DefaultWeights() Weights {
	return Weights{Importance: 1, Urgency: 1, Effort: 1}
}

// DueBonus computes the due-date proximity bonus. The due date is taken at
// end of day (23:59:59) so a task due today is not overdue until the day
// fully elapses. The bonus decays linearly, reaching 0 once the deadline is
// 9+ days out, and keeps growing without cap as a task goes overdue.
func DueBonus(due time.Time, now time.Time) float64 {
	end := time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 59, 0, now.Location())
	diffDays := math.Ceil(end.Sub(now).Hours() / 24)
	return math.Max(0, 3-diffDays/3)
}

// Score computes the priority score for a task. Higher means more worth
// doing. Pure: the same task, weights, and reference time always produce
// the same integer.
func Score(t Task, w Weights, now time.Time) int {
	bonus := 0.0
	if t.Due != nil {
		bonus = DueBonus(*t.Due, now)
	}
	raw := w.Importance*t.Importance + w.Urgency*(t.Urgency+bonus) - w.Effort*t.Effort
	// Affine rescale for display. Not clamped: a very negative raw score
	// stays negative. Halves round toward positive infinity, so an exact
	// -.5 lands on 0, not -1.
	return int(math.Floor((raw+10)*4 + 0.5))
}

// Score band thresholds.
const (
	LabelHigh = "high"
	LabelMed  = "med"
	LabelLow  = "low"
)

// Label classifies a score into its display band.
func Label(score int) string {
	switch {
	case score >= 60:
		return LabelHigh
	case score >= 40:
		return LabelMed
	default:
		return LabelLow
	}
}

// Rank recomputes every task's score and stable-sorts the slice from
// highest to lowest. Ties keep the user's manual order.
func Rank(tasks []Task, w Weights, now time.Time) {
	for i := range tasks {
		tasks[i].Score = Score(tasks[i], w, now)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Score > tasks[j].Score
	})
}
