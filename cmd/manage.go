package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/store"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a task from the list",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

var editCmd = &cobra.Command{
	Use:   "edit <id> [new title]",
	Short: "Change a task's title or ratings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEdit,
}

var moveCmd = &cobra.Command{
	Use:   "move <id> up|down",
	Short: "Shift a task in the manual order",
	Long: `Move a task one slot up or down in the manual order. The manual order
breaks score ties and feeds the planner; moving past either end of the
list is silently ignored.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tasks",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var (
	rmYes     bool
	clearYes  bool
	editFlags ratingFlags
)

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip the confirmation prompt")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
	editFlags.register(editCmd.Flags())
	editCmd.Flags().Bool("clear-due", false, "Remove the due date")
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid task ID — use %s to see IDs", arg, ui.Accent.Render("prio list"))
	}
	return id, nil
}

func runRm(_ *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	t, err := ts.Get(id)
	if err != nil {
		return err
	}

	if !rmYes && !confirm(fmt.Sprintf("Delete %q?", t.Title)) {
		fmt.Println(ui.Muted.Render("  Kept."))
		return nil
	}

	if err := ts.Delete(id); err != nil {
		return err
	}

	fmt.Printf("  %s Removed #%d %s\n", ui.Success.Render("✓"), id, ui.Muted.Render(t.Title))
	fmt.Println()
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	var u task.Update
	if len(args) > 1 {
		title := strings.Join(args[1:], " ")
		u.Title = &title
	}
	if cmd.Flags().Changed("importance") {
		u.Importance = &editFlags.importance
	}
	if cmd.Flags().Changed("urgency") {
		u.Urgency = &editFlags.urgency
	}
	if cmd.Flags().Changed("effort") {
		u.Effort = &editFlags.effort
	}
	if cmd.Flags().Changed("category") {
		u.Category = &editFlags.category
	}
	if cmd.Flags().Changed("desc") {
		u.Desc = &editFlags.desc
	}
	if clear, _ := cmd.Flags().GetBool("clear-due"); clear {
		u.ClearDue = true
	} else if cmd.Flags().Changed("due") {
		due := parseDueDate(editFlags.due)
		if due == nil {
			return fmt.Errorf("cannot parse due date %q — use YYYY-MM-DD, today, tomorrow, or next-week", editFlags.due)
		}
		u.Due = due
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	if err := ts.Edit(id, u); err != nil {
		return err
	}

	t, err := ts.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("  %s Updated #%d %s %s\n", ui.Success.Render("✓"), id, ui.IconArrow, t.Title)
	fmt.Println()
	return nil
}

func runMove(_ *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	var delta int
	switch strings.ToLower(args[1]) {
	case "up", "u":
		delta = -1
	case "down", "d":
		delta = 1
	default:
		return fmt.Errorf("direction must be %s, got %q", ui.Accent.Render("up|down"), args[1])
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	if err := ts.Move(id, delta); err != nil {
		return err
	}

	fmt.Printf("  %s Moved #%d %s\n", ui.Success.Render("✓"), id, args[1])
	fmt.Println()
	return nil
}

func runClear(_ *cobra.Command, _ []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())
	n, err := ts.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println(ui.Muted.Render("  Nothing to clear."))
		return nil
	}

	if !clearYes && !confirm(fmt.Sprintf("Remove all %d tasks?", n)) {
		fmt.Println(ui.Muted.Render("  Kept."))
		return nil
	}

	removed, err := ts.Clear()
	if err != nil {
		return err
	}

	fmt.Printf("  %s Removed %d task(s)\n", ui.Success.Render("✓"), removed)
	fmt.Println()
	return nil
}
