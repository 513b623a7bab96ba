package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prio version",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("prio %s\n", ui.Accent.Render(version.Full()))
	},
}
