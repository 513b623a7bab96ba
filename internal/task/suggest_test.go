package task

import "testing"

func TestSuggest_Baseline(t *testing.T) {
	s := Suggest("buy milk", "")

	if s.Importance != 5 || s.Urgency != 4 || s.Effort != 1 {
		t.Errorf("expected baseline {5 4 1}, got {%v %v %v}", s.Importance, s.Urgency, s.Effort)
	}
}

func TestSuggest_UrgencyKeywords(t *testing.T) {
	for _, text := range []string{"urgent fix", "do this asap", "reply immediately", "ship today"} {
		s := Suggest(text, "")
		if s.Urgency != 9 {
			t.Errorf("Suggest(%q) urgency = %v, want 9", text, s.Urgency)
		}
	}
}

func TestSuggest_ImportanceKeywords(t *testing.T) {
	for _, text := range []string{"important meeting", "must finish", "critical bug", "high impact work"} {
		s := Suggest(text, "")
		if s.Importance != 9 {
			t.Errorf("Suggest(%q) importance = %v, want 9", text, s.Importance)
		}
	}
}

func TestSuggest_DeprioritizeWinsOverImportance(t *testing.T) {
	// The de-prioritizing rule runs last: it undoes the importance keyword.
	s := Suggest("important but low priority, do whenever", "")

	if s.Importance != 3 {
		t.Errorf("expected importance 3, got %v", s.Importance)
	}
}

func TestSuggest_DuePhrase(t *testing.T) {
	cases := []struct {
		desc string
		want float64
	}{
		{"due in 2 weeks", 6},  // max(4, 10-2*2)
		{"due in 2 days", 8},   // max(4, 10-2)
		{"due in 1 day", 9},    // max(4, 10-1)
		{"due in 9 days", 4},   // 10-9=1 loses to baseline
		{"due in 20 days", 4},  // clamped at 0, baseline wins
		{"due in 6 weeks", 4},  // 10-12 clamps to 0
	}
	for _, c := range cases {
		s := Suggest("", c.desc)
		if s.Urgency != c.want {
			t.Errorf("Suggest(%q) urgency = %v, want %v", c.desc, s.Urgency, c.want)
		}
	}
}

func TestSuggest_EffortHours(t *testing.T) {
	s := Suggest("refactor parser, about 3h of work", "")
	if s.Effort != 3 {
		t.Errorf("expected effort 3, got %v", s.Effort)
	}

	s = Suggest("big job", "roughly 2.5h")
	if s.Effort != 2.5 {
		t.Errorf("expected effort 2.5, got %v", s.Effort)
	}
}

func TestSuggest_BareHoursWordKeepsDefault(t *testing.T) {
	// "hours" with no number matches the pattern but has nothing to parse —
	// the default effort survives.
	s := Suggest("this will take hours", "")
	if s.Effort != 1 {
		t.Errorf("expected default effort 1, got %v", s.Effort)
	}
}

func TestSuggest_CombinedRules(t *testing.T) {
	s := Suggest("urgent: critical report", "due in 1 week, 4h")

	if s.Urgency != 9 {
		t.Errorf("urgency keyword should win over due phrase: got %v", s.Urgency)
	}
	if s.Importance != 9 {
		t.Errorf("expected importance 9, got %v", s.Importance)
	}
	if s.Effort != 4 {
		t.Errorf("expected effort 4, got %v", s.Effort)
	}
}
