package task

import (
	"database/sql"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}

	_, err = db.Exec(`CREATE TABLE tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT DEFAULT '',
		due_date TEXT,
		importance REAL DEFAULT 5,
		urgency REAL DEFAULT 4,
		effort REAL DEFAULT 1,
		category TEXT DEFAULT 'general',
		position INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		t.Fatal(err)
	}

	return db
}

func TestAddAndList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	id, err := s.Add(Task{Title: "Write report", Importance: 7, Urgency: 6, Effort: 3, Category: "work"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	tasks, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Write report" || got.Importance != 7 || got.Urgency != 6 || got.Effort != 3 || got.Category != "work" {
		t.Fatalf("unexpected task: %+v", got)
	}
	if got.UID == "" {
		t.Fatal("expected a generated UID")
	}
}

func TestAdd_Defaults(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	id, err := s.Add(Task{Title: "  padded  ", Importance: 5, Urgency: 4})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "padded" {
		t.Errorf("title not trimmed: %q", got.Title)
	}
	if got.Effort != DefaultEffort {
		t.Errorf("expected default effort %v, got %v", DefaultEffort, got.Effort)
	}
	if got.Category != DefaultCategory {
		t.Errorf("expected default category %q, got %q", DefaultCategory, got.Category)
	}
}

func TestAdd_EmptyTitle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	if _, err := s.Add(Task{Title: "   "}); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestAdd_UIDsUnique(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		id, err := s.Add(Task{Title: "task"})
		if err != nil {
			t.Fatal(err)
		}
		got, _ := s.Get(id)
		if seen[got.UID] {
			t.Fatalf("UID %q reused", got.UID)
		}
		seen[got.UID] = true
	}
}

func TestGetByUID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	id, _ := s.Add(Task{Title: "find me"})
	created, _ := s.Get(id)

	got, err := s.GetByUID(created.UID)
	if err != nil {
		t.Fatalf("GetByUID failed: %v", err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("expected task #%d, got %+v", id, got)
	}

	missing, err := s.GetByUID("no-such-uid")
	if err != nil {
		t.Fatalf("GetByUID for absent uid errored: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for absent uid, got %+v", missing)
	}
}

func TestMove(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	a, _ := s.Add(Task{Title: "a"})
	b, _ := s.Add(Task{Title: "b"})
	c, _ := s.Add(Task{Title: "c"})

	if err := s.Move(c, -1); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	tasks, _ := s.List()
	order := []int{tasks[0].ID, tasks[1].ID, tasks[2].ID}
	want := []int{a, c, b}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestMove_OutOfRangeIsNoop(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	a, _ := s.Add(Task{Title: "a"})
	b, _ := s.Add(Task{Title: "b"})

	// Moving the first task up and the last task down must change nothing.
	if err := s.Move(a, -1); err != nil {
		t.Fatalf("Move up at top errored: %v", err)
	}
	if err := s.Move(b, 1); err != nil {
		t.Fatalf("Move down at bottom errored: %v", err)
	}

	tasks, _ := s.List()
	if tasks[0].ID != a || tasks[1].ID != b {
		t.Fatalf("no-op move changed order: %+v", tasks)
	}
}

func TestMove_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	if err := s.Move(999, 1); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestEdit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	id, _ := s.Add(Task{Title: "old", Importance: 5, Urgency: 4, Effort: 2})

	title := "new"
	imp := 9.0
	if err := s.Edit(id, Update{Title: &title, Importance: &imp}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	got, _ := s.Get(id)
	if got.Title != "new" || got.Importance != 9 {
		t.Fatalf("edit not applied: %+v", got)
	}
	if got.Effort != 2 {
		t.Fatalf("untouched field changed: %+v", got)
	}
}

func TestEdit_ClearDue(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	due := baseTime
	id, _ := s.Add(Task{Title: "dated", Due: &due})

	if err := s.Edit(id, Update{ClearDue: true}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	got, _ := s.Get(id)
	if got.Due != nil {
		t.Fatalf("due date not cleared: %+v", got.Due)
	}
}

func TestEdit_NoFieldsIsNoop(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	id, _ := s.Add(Task{Title: "stable"})
	if err := s.Edit(id, Update{}); err != nil {
		t.Fatalf("empty edit errored: %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	id, _ := s.Add(Task{Title: "doomed"})
	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := s.Delete(id); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestClearAndCount(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	s.Add(Task{Title: "one"})
	s.Add(Task{Title: "two"})

	n, err := s.Count()
	if err != nil || n != 2 {
		t.Fatalf("expected count 2, got %d (%v)", n, err)
	}

	removed, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	n, _ = s.Count()
	if n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}

func TestDueDateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	s := NewStore(db)

	due := baseTime
	id, _ := s.Add(Task{Title: "dated", Due: &due})

	got, _ := s.Get(id)
	if got.Due == nil {
		t.Fatal("due date lost")
	}
	if got.Due.Format("2006-01-02") != due.Format("2006-01-02") {
		t.Fatalf("due date changed: %v vs %v", got.Due, due)
	}
}
