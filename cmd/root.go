package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/config"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/store"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "prio",
	Short: "Score, sort, and plan your tasks",
	Long: `prio — a transparent task prioritizer. A deterministic weighted score
(importance, urgency, effort, deadline proximity) ranks your tasks, a
keyword heuristic pre-fills ratings from plain text, and a greedy packer
turns the ranking into a day-by-day plan.`,
	RunE: runDashboard,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// runDashboard shows the at-a-glance status when you just type `prio`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	tasks, err := ts.List()
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}

	name := cfg.User.Name
	if name != "" {
		fmt.Printf("%s Hey %s!\n", ui.IconTarget, name)
	} else {
		fmt.Printf("%s Hey there!\n", ui.IconTarget)
	}
	fmt.Println()

	if len(tasks) == 0 {
		fmt.Println(ui.Muted.Render("  No tasks yet."))
		ui.Tip(`prio add "something important" to capture the first one.`)
		fmt.Println()
		return nil
	}

	now := time.Now()
	task.Rank(tasks, weightsFromConfig(cfg), now)

	var high, med, low int
	for _, t := range tasks {
		switch task.Label(t.Score) {
		case task.LabelHigh:
			high++
		case task.LabelMed:
			med++
		default:
			low++
		}
	}

	ui.Kv(ui.IconTask+" Tasks", fmt.Sprintf("%d total", len(tasks)))
	ui.Kv("  Bands", fmt.Sprintf("%s · %s · %s",
		ui.ScoreHighStyle.Render(fmt.Sprintf("high %d", high)),
		ui.ScoreMedStyle.Render(fmt.Sprintf("med %d", med)),
		ui.ScoreLowStyle.Render(fmt.Sprintf("low %d", low)),
	))

	top := tasks[0]
	ui.Kv("  Up next", fmt.Sprintf("%s (score %d)", top.Title, top.Score))
	ui.Kv("  📅 Today", now.Format("Monday, January 2"))

	if high > 0 {
		ui.Tip("`prio plan` to turn the ranking into a day plan.")
	} else {
		ui.Tip("`prio list` to browse the full ranking.")
	}
	fmt.Println()

	return nil
}
