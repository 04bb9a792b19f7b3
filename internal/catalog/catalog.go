// Package catalog holds the fitness-test catalog shown on the Tests tab.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// ErrUnknownTest is returned when a test ID is not in the catalog.
var ErrUnknownTest = errors.New("unknown fitness test")

// Difficulty grades a fitness test.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Test IDs.
const (
	VerticalJump = "vertical-jump"
	ShuttleRun   = "shuttle-run"
	SitUps       = "sit-ups"
	EnduranceRun = "endurance-run"
	Flexibility  = "flexibility"
	PlankHold    = "plank-hold"
)

// Test describes one assessment in the catalog.
type Test struct {
	ID          string
	Title       string
	Description string
	Duration    string
	Difficulty  Difficulty
	Completed   bool
	LastScore   string
	Improvement string
	// Guided reports whether the test has a capture flow in this client.
	Guided bool
}

// Tests is the fixed catalog in display order.
var Tests = []Test{
	{ID: VerticalJump, Title: "Vertical Jump", Description: "Measure your explosive power", Duration: "2 mins", Difficulty: DifficultyMedium, Completed: true, LastScore: "45 cm", Improvement: "+5 cm"},
	{ID: ShuttleRun, Title: "Shuttle Run", Description: "Test your agility and speed", Duration: "3 mins", Difficulty: DifficultyHard, Guided: true},
	{ID: SitUps, Title: "Sit-ups Test", Description: "Core strength assessment", Duration: "2 mins", Difficulty: DifficultyEasy, Completed: true, LastScore: "42 reps", Improvement: "+8 reps"},
	{ID: EnduranceRun, Title: "Endurance Run", Description: "1.5km cardiovascular test", Duration: "15 mins", Difficulty: DifficultyHard},
	{ID: Flexibility, Title: "Flexibility Test", Description: "Measure your range of motion", Duration: "5 mins", Difficulty: DifficultyEasy, Completed: true, LastScore: "18 cm", Improvement: "+3 cm"},
	{ID: PlankHold, Title: "Plank Hold", Description: "Core stability and endurance", Duration: "3 mins", Difficulty: DifficultyMedium},
}

// Lookup finds a test by ID.
func Lookup(id string) (Test, error) {
	for _, t := range Tests {
		if t.ID == id {
			return t, nil
		}
	}
	return Test{}, fmt.Errorf("%w: %q", ErrUnknownTest, id)
}

// IDs returns every test ID in display order.
func IDs() []string {
	ids := make([]string, len(Tests))
	for i, t := range Tests {
		ids[i] = t.ID
	}
	return ids
}

// Completion summarizes how many catalog tests the athlete has completed.
type Completion struct {
	Completed int
	Total     int
	Percent   float64
}

// Summarize computes the completion summary for a set of tests.
func Summarize(tests []Test) Completion {
	c := Completion{Total: len(tests)}
	for _, t := range tests {
		if t.Completed {
			c.Completed++
		}
	}
	if c.Total > 0 {
		c.Percent = float64(c.Completed) / float64(c.Total) * 100
	}
	return c
}

// Markdown returns the test brief as markdown.
func (t Test) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "%s.\n\n", t.Description)
	b.WriteString("| Duration | Difficulty | Status |\n")
	b.WriteString("|---|---|---|\n")
	status := "Not started"
	if t.Completed {
		status = "Completed"
	}
	fmt.Fprintf(&b, "| %s | %s | %s |\n\n", t.Duration, t.Difficulty, status)

	if t.LastScore != "" {
		fmt.Fprintf(&b, "**Last score:** %s", t.LastScore)
		if t.Improvement != "" {
			fmt.Fprintf(&b, " (%s)", t.Improvement)
		}
		b.WriteString("\n\n")
	}

	if t.Guided {
		fmt.Fprintf(&b, "Run it with `fitodo run %s`.\n", t.ID)
	} else {
		b.WriteString("_Guided capture for this test is coming soon._\n")
	}
	return b.String()
}

// Brief renders the markdown brief of a test for a terminal of the given
// width. A zero width uses glamour's default word wrap.
func Brief(id string, width int, plain bool) (string, error) {
	t, err := Lookup(id)
	if err != nil {
		return "", err
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if plain {
		opts = []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(t.Markdown())
	if err != nil {
		return "", fmt.Errorf("failed to render brief for %s: %w", id, err)
	}
	return out, nil
}
