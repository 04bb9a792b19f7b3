package handlers

import (
	"fmt"

	"github.com/fitodo/fitodo/internal/catalog"
)

// renderBrief renders a test brief - can be replaced in tests.
var renderBrief = catalog.Brief

// TestsList prints the catalog with the completion summary.
func TestsList() error {
	fmt.Println("Fitness Tests")
	fmt.Println("-------------")
	for _, t := range catalog.Tests {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		score := ""
		if t.LastScore != "" {
			score = t.LastScore
			if t.Improvement != "" {
				score += " (" + t.Improvement + ")"
			}
		}
		guided := ""
		if t.Guided {
			guided = "  guided"
		}
		fmt.Printf("  %s %-14s %-18s %-8s %-7s %s%s\n", mark, t.ID, t.Title, t.Duration, t.Difficulty, score, guided)
	}

	c := catalog.Summarize(catalog.Tests)
	fmt.Println()
	fmt.Printf("Completed %d of %d (%.0f%%)\n", c.Completed, c.Total, c.Percent)
	return nil
}

// TestsShow prints the markdown brief of a test. Output is unstyled when
// stdout is not a terminal or noColor is set.
func TestsShow(id string, width int, noColor bool) error {
	plain := noColor || !isInteractiveTTY()
	out, err := renderBrief(id, width, plain)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
