package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/config"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the scoring multipliers",
	Long: `Show or change the three scoring multipliers. The score of a task is

  round((importance*W_i + (urgency + dueBonus)*W_u - effort*W_e + 10) * 4)

so raising a weight makes its factor count for more. All weights default
to 1 and must be non-negative.`,
	Args: cobra.NoArgs,
	RunE: runWeightsShow,
}

var weightsSetCmd = &cobra.Command{
	Use:   "set <importance> <urgency> <effort>",
	Short: "Set the scoring multipliers",
	Args:  cobra.ExactArgs(3),
	RunE:  runWeightsSet,
}

func init() {
	weightsCmd.AddCommand(weightsSetCmd)
}

func runWeightsShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	w := weightsFromConfig(cfg)
	fmt.Println()
	ui.Kv("  Importance", fmt.Sprintf("%g", w.Importance))
	ui.Kv("  Urgency", fmt.Sprintf("%g", w.Urgency))
	ui.Kv("  Effort", fmt.Sprintf("%g", w.Effort))
	ui.Tip("prio weights set 1.5 1 0.5 to favor importance over effort.")
	fmt.Println()

	return nil
}

func runWeightsSet(_ *cobra.Command, args []string) error {
	vals := make([]float64, 3)
	names := []string{"importance", "urgency", "effort"}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number for the %s weight", arg, names[i])
		}
		if v < 0 {
			return fmt.Errorf("the %s weight must be non-negative, got %g", names[i], v)
		}
		vals[i] = v
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.Weights.Importance = config.FloatPtr(vals[0])
	cfg.Weights.Urgency = config.FloatPtr(vals[1])
	cfg.Weights.Effort = config.FloatPtr(vals[2])

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  %s Weights set: importance %g · urgency %g · effort %g\n",
		ui.Success.Render("✓"), vals[0], vals[1], vals[2])
	fmt.Println(ui.Muted.Render("  Scores are recomputed on the next list/plan."))
	fmt.Println()

	return nil
}
