package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/store"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/task"
	"github.com/krushavadher/AI-Powered-Task-Prioritizer/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the task list as a JSON snapshot",
	Long: `Export all tasks to JSON, to stdout or the given file. Each task keeps
its stable UID, so importing the snapshot elsewhere never duplicates tasks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge tasks from a JSON snapshot",
	Long: `Import tasks from a snapshot produced by 'prio export'. Tasks whose UID
already exists locally are skipped; everything else is appended to the end
of the manual order.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// snapshot is the export file format.
type snapshot struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	Tasks      []snapshotTask `json:"tasks"`
}

type snapshotTask struct {
	UID        string  `json:"uid"`
	Title      string  `json:"title"`
	Desc       string  `json:"desc,omitempty"`
	Due        string  `json:"due,omitempty"` // YYYY-MM-DD
	Importance float64 `json:"importance"`
	Urgency    float64 `json:"urgency"`
	Effort     float64 `json:"effort"`
	Category   string  `json:"category,omitempty"`
}

func runExport(_ *cobra.Command, args []string) error {
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

	snap := snapshot{
		Version:    1,
		ExportedAt: time.Now().UTC(),
		Tasks:      make([]snapshotTask, 0, len(tasks)),
	}
	for _, t := range tasks {
		st := snapshotTask{
			UID:        t.UID,
			Title:      t.Title,
			Desc:       t.Desc,
			Importance: t.Importance,
			Urgency:    t.Urgency,
			Effort:     t.Effort,
			Category:   t.Category,
		}
		if t.Due != nil {
			st.Due = t.Due.Format("2006-01-02")
		}
		snap.Tasks = append(snap.Tasks, st)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	fmt.Printf("  %s Exported %d task(s) to %s\n", ui.Success.Render("✓"), len(snap.Tasks), args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}
	if snap.Version != 1 {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	ts := task.NewStore(db.Conn())

	added, skipped := 0, 0
	for _, st := range snap.Tasks {
		if st.UID != "" {
			existing, err := ts.GetByUID(st.UID)
			if err != nil {
				return err
			}
			if existing != nil {
				skipped++
				continue
			}
		}

		t := task.Task{
			UID:        st.UID,
			Title:      st.Title,
			Desc:       st.Desc,
			Importance: st.Importance,
			Urgency:    st.Urgency,
			Effort:     st.Effort,
			Category:   st.Category,
		}
		if st.Due != "" {
			if due, err := time.Parse("2006-01-02", st.Due); err == nil {
				t.Due = &due
			}
		}

		if _, err := ts.Add(t); err != nil {
			return fmt.Errorf("importing %q: %w", st.Title, err)
		}
		added++
	}

	fmt.Printf("  %s Imported %d task(s)", ui.Success.Render("✓"), added)
	if skipped > 0 {
		fmt.Printf(ui.Muted.Render(" (%d already present)"), skipped)
	}
	fmt.Println()
	return nil
}
