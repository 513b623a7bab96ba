package task

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Suggestion holds ratings inferred from free text. It is advice only;
// nothing is created or mutated.
type Suggestion struct {
	Importance float64
	Urgency    float64
	Effort     float64
}

var (
	urgentRe       = regexp.MustCompile(`urgent|asap|immediately|today|now`)
	importantRe    = regexp.MustCompile(`important|must|priority|critical|high impact`)
	dueInRe        = regexp.MustCompile(`due in (\d+) (day|days|week|weeks)`)
	hoursRe        = regexp.MustCompile(`(\d+(?:\.\d+)?)h|hours?`)
	deprioritizeRe = regexp.MustCompile(`later|someday|whenever|low priority|nice to have`)
)

// Suggest infers (importance, urgency, effort) from a task's title and
// description. Baseline is {5, 4, 1}; keyword rules only push importance
// and urgency toward the extremes via max/min. The de-prioritizing rule
// runs last and wins over the importance-keyword rule when both match.
func Suggest(title, desc string) Suggestion {
	text := strings.ToLower(title + " " + desc)
	s := Suggestion{Importance: 5, Urgency: 4, Effort: 1}

	if urgentRe.MatchString(text) {
		s.Urgency = math.Max(s.Urgency, 9)
	}
	if importantRe.MatchString(text) {
		s.Importance = math.Max(s.Importance, 9)
	}

	if m := dueInRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			s.Urgency = math.Max(s.Urgency, math.Max(0, float64(10-2*n)))
		} else {
			s.Urgency = math.Max(s.Urgency, math.Max(0, float64(10-n)))
		}
	}

	// The bare words "hour"/"hours" match with an empty number capture;
	// the failed parse (or a zero) silently keeps the default effort.
	if m := hoursRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			s.Effort = v
		}
	}

	if deprioritizeRe.MatchString(text) {
		s.Importance = math.Min(s.Importance, 3)
	}

	return s
}
