package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/config"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/store"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/tui"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Browse tasks ranked by score",
	Long: `Score every task with the current weights, sort descending, and show
the ranking. In an interactive terminal this opens a full-screen browser:

  j / k        Move down / up
  J / K        Reorder (move task down / up)
  a            Add new task (title typed inline, ratings suggested)
  d            Delete selected task
  /            Filter tasks (substring)
  g / G        Jump to top / bottom
  q / Ctrl+C   Quit

Pipe the output or pass --plain for plain text.`,
	RunE: runList,
}

var listPlain bool

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Plain text output (no browser)")
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
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

	now := time.Now()
	task.Rank(tasks, weightsFromConfig(cfg), now)

	if !listPlain && tui.IsTTY() {
		return runListTUI(ts, tasks)
	}

	return printList(tasks, now)
}

func runListTUI(ts *task.Store, tasks []task.Task) error {
	actions, err := tui.Run(tasks)
	if err != nil {
		return err
	}

	failed := applyActions(ts, actions)
	if len(failed) > 0 {
		fmt.Println(ui.Warning.Render("Some actions failed:"))
		for _, msg := range failed {
			fmt.Println("  " + msg)
		}
	}

	return nil
}

// applyActions applies queued browser actions to the store in order. Tasks
// added in the browser carry a temporary negative ID until Add returns the
// real one; later deletes and moves on the same entry are remapped to it.
func applyActions(ts *task.Store, actions []tui.Action) []string {
	var failed []string
	realID := make(map[int]int)

	for _, a := range actions {
		if a.ID < 0 && a.Type != "add" {
			id, ok := realID[a.ID]
			if !ok {
				continue
			}
			a.ID = id
		}

		switch a.Type {
		case "delete":
			if err := ts.Delete(a.ID); err != nil {
				failed = append(failed, fmt.Sprintf("delete #%d: %v", a.ID, err))
			}
		case "add":
			sug := task.Suggest(a.Text, "")
			id, err := ts.Add(task.Task{
				Title:      a.Text,
				Importance: sug.Importance,
				Urgency:    sug.Urgency,
				Effort:     sug.Effort,
			})
			if err != nil {
				failed = append(failed, fmt.Sprintf("add %q: %v", a.Text, err))
			} else if a.ID < 0 {
				realID[a.ID] = id
			}
		case "move":
			if err := ts.Move(a.ID, a.Delta); err != nil {
				failed = append(failed, fmt.Sprintf("move #%d: %v", a.ID, err))
			}
		}
	}

	return failed
}

func printList(tasks []task.Task, now time.Time) error {
	if len(tasks) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No tasks yet. Life is good?"))
		fmt.Println()
		fmt.Printf("  Add one: %s\n", ui.Accent.Render(`prio add "something important"`))
		fmt.Println()
		return nil
	}

	fmt.Println()
	for _, t := range tasks {
		printTaskLine(t, now)
	}

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
	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d tasks · high %d · med %d · low %d",
		len(tasks), high, med, low)))
	fmt.Println()

	return nil
}
