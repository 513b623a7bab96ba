package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/store"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Capture a task before it escapes",
	Long: `Add a task to the list. Ratings default to importance 5, urgency 4,
effort 1h; set them with flags, or pass --suggest to infer them from the
title and description (keywords like "urgent", "due in 2 weeks", "3h").
Explicit flags always win over suggested values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addFlags   ratingFlags
	addSuggest bool
)

func init() {
	addFlags.register(addCmd.Flags())
	addCmd.Flags().BoolVarP(&addSuggest, "suggest", "s", false, "Infer ratings from the text")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	var due *time.Time
	if addFlags.due != "" {
		due = parseDueDate(addFlags.due)
		if due == nil {
			return fmt.Errorf("cannot parse due date %q — use YYYY-MM-DD, today, tomorrow, or next-week", addFlags.due)
		}
	}

	t := task.Task{
		Title:      title,
		Desc:       addFlags.desc,
		Importance: addFlags.importance,
		Urgency:    addFlags.urgency,
		Effort:     addFlags.effort,
		Category:   addFlags.category,
		Due:        due,
	}

	if addSuggest {
		sug := task.Suggest(title, addFlags.desc)
		if !cmd.Flags().Changed("importance") {
			t.Importance = sug.Importance
		}
		if !cmd.Flags().Changed("urgency") {
			t.Urgency = sug.Urgency
		}
		if !cmd.Flags().Changed("effort") {
			t.Effort = sug.Effort
		}
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	id, err := ts.Add(t)
	if err != nil {
		return err
	}

	fmt.Printf("  %s Added %s\n", ui.Success.Render("✓"), ui.Accent.Render(fmt.Sprintf("#%d", id)))
	fmt.Printf("    %s\n", strings.TrimSpace(title))
	fmt.Printf("    %s\n", ui.Muted.Render(fmt.Sprintf("importance %g · urgency %g · effort %gh",
		t.Importance, t.Urgency, t.Effort)))
	if t.Due != nil {
		fmt.Printf("    Due: %s\n", ui.Muted.Render(t.Due.Format("Mon, Jan 2")))
	}
	if addSuggest {
		fmt.Printf("    %s\n", ui.Info.Render(ui.IconSuggest+" ratings suggested from text"))
	}
	fmt.Println()

	return nil
}
