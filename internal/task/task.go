package task

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied at creation.
const (
	DefaultImportance = 5.0
	DefaultUrgency    = 4.0
	DefaultEffort     = 1.0
	DefaultCategory   = "general"
)

// Task represents a single prioritizable task.
//
// ID is the row ID used for CLI addressing. UID is a UUIDv4 assigned at
// creation and never reused; export/import dedups on it. Score is a cache
// of the last scoring pass, always recomputable from the other fields.
type Task struct {
	ID         int
	UID        string
	Title      string
	Desc       string
	Due        *time.Time // date only, no time-of-day
	Importance float64
	Urgency    float64
	Effort     float64 // estimated hours
	Category   string
	Score      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Update describes a partial edit. Nil fields are left untouched.
type Update struct {
	Title      *string
	Desc       *string
	Category   *string
	Importance *float64
	Urgency    *float64
	Effort     *float64
	Due        *time.Time
	ClearDue   bool
}

// Store handles task persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new task store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const taskColumns = "id, uid, title, description, due_date, importance, urgency, effort, COALESCE(category, 'general'), created_at, updated_at"

// Add creates a new task at the end of the manual order and returns its ID.
// A fresh UID is generated when t.UID is empty (import supplies its own).
// Effort ≤ 0 falls back to the default, category "" to "general".
func (s *Store) Add(t Task) (int, error) {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return 0, fmt.Errorf("task title must not be empty")
	}
	if t.UID == "" {
		t.UID = uuid.New().String()
	}
	if t.Effort <= 0 {
		t.Effort = DefaultEffort
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}

	var dueStr *string
	if t.Due != nil {
		d := t.Due.Format("2006-01-02")
		dueStr = &d
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (uid, title, description, due_date, importance, urgency, effort, category, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks))`,
		t.UID, title, t.Desc, dueStr, t.Importance, t.Urgency, t.Effort, t.Category,
	)
	if err != nil {
		return 0, err
	}

	id, _ := res.LastInsertId()
	return int(id), nil
}

// Get returns a single task by ID.
func (s *Store) Get(id int) (*Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("task #%d not found", id)
	}
	return t, nil
}

// GetByUID returns a single task by its stable UID, or nil if absent.
func (s *Store) GetByUID(uid string) (*Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE uid = ?`, uid)
	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// List returns all tasks in manual (position) order.
func (s *Store) List() ([]Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Edit applies a partial update to a task.
func (s *Store) Edit(id int, u Update) error {
	var sets []string
	var args []any

	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return fmt.Errorf("task title must not be empty")
		}
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if u.Desc != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Desc)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.Importance != nil {
		sets = append(sets, "importance = ?")
		args = append(args, *u.Importance)
	}
	if u.Urgency != nil {
		sets = append(sets, "urgency = ?")
		args = append(args, *u.Urgency)
	}
	if u.Effort != nil {
		effort := *u.Effort
		if effort <= 0 {
			effort = DefaultEffort
		}
		sets = append(sets, "effort = ?")
		args = append(args, effort)
	}
	if u.ClearDue {
		sets = append(sets, "due_date = NULL")
	} else if u.Due != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, u.Due.Format("2006-01-02"))
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task #%d not found", id)
	}
	return nil
}

// Move shifts a task up (delta < 0) or down (delta > 0) in the manual order
// by swapping positions with its neighbor. A target slot outside the list is
// a no-op, not an error.
func (s *Store) Move(id int, delta int) error {
	tasks, err := s.List()
	if err != nil {
		return err
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("task #%d not found", id)
	}

	target := idx + delta
	if target < 0 || target >= len(tasks) {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	// Swap position values. Positions are read back rather than assumed
	// contiguous — deletes leave gaps.
	var posA, posB int
	if err := tx.QueryRow(`SELECT position FROM tasks WHERE id = ?`, tasks[idx].ID).Scan(&posA); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.QueryRow(`SELECT position FROM tasks WHERE id = ?`, tasks[target].ID).Scan(&posB); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`UPDATE tasks SET position = ? WHERE id = ?`, posB, tasks[idx].ID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`UPDATE tasks SET position = ? WHERE id = ?`, posA, tasks[target].ID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Delete removes a task.
func (s *Store) Delete(id int) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task #%d not found", id)
	}
	return nil
}

// Clear removes all tasks.
func (s *Store) Clear() (int, error) {
	res, err := s.db.Exec(`DELETE FROM tasks`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Count returns the number of tasks.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}

// scanner abstracts *sql.Row and *sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var t Task
	var dueStr sql.NullString
	var createdStr, updatedStr string

	err := row.Scan(&t.ID, &t.UID, &t.Title, &t.Desc, &dueStr,
		&t.Importance, &t.Urgency, &t.Effort, &t.Category, &createdStr, &updatedStr)
	if err != nil {
		return nil, err
	}

	if dueStr.Valid && dueStr.String != "" {
		if parsed, err := time.Parse("2006-01-02", dueStr.String); err == nil {
			t.Due = &parsed
		}
	}
	t.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
	t.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedStr)

	return &t, nil
}
