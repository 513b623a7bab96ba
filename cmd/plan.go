package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/config"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/store"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Pack the ranked tasks into a day-by-day plan",
	Long: `Score and sort all tasks, then distribute them greedily across days of
fixed capacity (8 effort-hours by default; override with --hours or the
plan.daily_hours config key). A task that overflows the current day is
split into a "part" today and a "continue" tomorrow.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

var planHours float64

func init() {
	planCmd.Flags().Float64Var(&planHours, "hours", 0, "Daily capacity in effort-hours (default from config)")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	hours := dailyHoursFromConfig(cfg)
	if cmd.Flags().Changed("hours") {
		if planHours <= 0 {
			return fmt.Errorf("--hours must be positive, got %g", planHours)
		}
		hours = planHours
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	tasks, err := ts.List()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No tasks to plan."))
		fmt.Println()
		return nil
	}

	task.Rank(tasks, weightsFromConfig(cfg), time.Now())
	entries := task.Plan(tasks, hours)

	fmt.Println()
	fmt.Printf("  %s Plan (%g h/day)\n", ui.IconPlan, hours)
	fmt.Println()

	lastDay := 0
	for _, e := range entries {
		if e.Day != lastDay {
			fmt.Println(ui.Accent.Render(fmt.Sprintf("  Day %d", e.Day)))
			lastDay = e.Day
		}

		line := fmt.Sprintf("    %s (%gh)", e.Title, e.Hours)
		switch e.Phase {
		case task.PhasePart:
			line += ui.Warning.Render(" — part")
		case task.PhaseContinue:
			line += ui.Warning.Render(" — continue")
		default:
			line += ui.Muted.Render(fmt.Sprintf(" — score %d", e.Score))
		}
		fmt.Println(line)
	}
	fmt.Println()

	return nil
}
