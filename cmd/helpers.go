package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/config"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

// weightsFromConfig builds scoring weights from config, using defaults for
// any unset field.
func weightsFromConfig(cfg *config.Config) task.Weights {
	w := task.DefaultWeights()
	if cfg.Weights.Importance != nil {
		w.Importance = *cfg.Weights.Importance
	}
	if cfg.Weights.Urgency != nil {
		w.Urgency = *cfg.Weights.Urgency
	}
	if cfg.Weights.Effort != nil {
		w.Effort = *cfg.Weights.Effort
	}
	return w
}

// dailyHoursFromConfig returns the configured planning capacity, falling
// back to the default of 8 effort-hours per day.
func dailyHoursFromConfig(cfg *config.Config) float64 {
	if cfg.Plan.DailyHours != nil && *cfg.Plan.DailyHours > 0 {
		return *cfg.Plan.DailyHours
	}
	return task.DefaultDailyHours
}

// ratingFlags holds the shared attribute flags for add/edit.
type ratingFlags struct {
	importance float64
	urgency    float64
	effort     float64
	category   string
	desc       string
	due        string
}

// register wires the rating flags onto a command's flag set.
func (r *ratingFlags) register(fs *pflag.FlagSet) {
	fs.Float64VarP(&r.importance, "importance", "i", task.DefaultImportance, "Importance rating (0-10)")
	fs.Float64VarP(&r.urgency, "urgency", "u", task.DefaultUrgency, "Urgency rating (0-10)")
	fs.Float64VarP(&r.effort, "effort", "e", task.DefaultEffort, "Estimated effort in hours")
	fs.StringVarP(&r.category, "category", "c", "", "Category label")
	fs.StringVar(&r.desc, "desc", "", "Free-text description")
	fs.StringVarP(&r.due, "due", "d", "", "Due date (YYYY-MM-DD, today, tomorrow, next-week)")
}

// parseDueDate turns a date shorthand into a calendar date. Returns nil for
// an empty or unrecognized value.
func parseDueDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(s) {
	case "today":
		return &today
	case "tomorrow", "tom":
		t := today.AddDate(0, 0, 1)
		return &t
	case "next-week", "nextweek", "nw":
		t := today.AddDate(0, 0, 7)
		return &t
	}

	formats := []string{"2006-01-02", "01/02/2006", "Jan 2", "January 2"}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			// If no year in format, use current year
			if t.Year() == 0 {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			}
			return &t
		}
	}

	return nil
}

// confirm asks a y/N question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// printTaskLine prints one row of the scored list.
func printTaskLine(t task.Task, now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	chip := ui.ScoreChip(t.Score, task.Label(t.Score))
	id := ui.Muted.Render(fmt.Sprintf("#%-3d", t.ID))
	line := fmt.Sprintf("  %s %s %s", chip, id, t.Title)

	if t.Due != nil {
		due := *t.Due
		dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())
		switch {
		case dueDay.Before(today):
			line += ui.Error.Render(fmt.Sprintf(" (overdue: %s)", due.Format("Jan 2")))
		case dueDay.Equal(today):
			line += ui.Warning.Render(" (due today!)")
		default:
			line += ui.Muted.Render(fmt.Sprintf(" (due %s)", due.Format("Jan 2")))
		}
	}

	line += ui.Muted.Render(fmt.Sprintf(" %gh", t.Effort))
	if t.Category != "" && t.Category != task.DefaultCategory {
		line += ui.Muted.Render(" [" + t.Category + "]")
	}

	fmt.Println(line)
}
