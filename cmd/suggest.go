package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <text...>",
	Short: "Infer ratings from free text without creating a task",
	Long: `Run the keyword heuristic over a title (and optional --desc) and print
the suggested importance, urgency, and effort. Nothing is stored — pass the
same text to 'prio add --suggest' to create the task with these values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

var suggestDesc string

func init() {
	suggestCmd.Flags().StringVar(&suggestDesc, "desc", "", "Free-text description")
}

func runSuggest(_ *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	s := task.Suggest(title, suggestDesc)

	fmt.Println()
	fmt.Printf("  %s %s\n", ui.Info.Render(ui.IconSuggest), ui.Accent.Render(title))
	ui.Kv("  Importance", fmt.Sprintf("%g", s.Importance))
	ui.Kv("  Urgency", fmt.Sprintf("%g", s.Urgency))
	ui.Kv("  Effort", fmt.Sprintf("%gh", s.Effort))
	ui.Tip(`prio add --suggest "` + title + `" to create it with these ratings.`)
	fmt.Println()

	return nil
}
