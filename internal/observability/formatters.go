// Package observability provides the process logger and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/puneetrinity/evalmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of the scored match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Score: %d/100  (confidence %.2f)\n\n", result.TotalScore, result.Confidence))
	sb.WriteString(fmt.Sprintf("Skills:      %3d\n", result.DimensionScores.Skills))
	sb.WriteString(fmt.Sprintf("Experience:  %3d\n", result.DimensionScores.Experience))
	sb.WriteString(fmt.Sprintf("Education:   %3d\n", result.DimensionScores.Education))
	sb.WriteString(fmt.Sprintf("Semantic:    %3d", result.DimensionScores.Semantic))

	p.printBox("MATCH RESULT", sb.String())
}

// PrintSkillBreakdown outputs the per-skill matching decisions.
func (p *Printer) PrintSkillBreakdown(breakdown []types.SkillMatch) {
	if len(breakdown) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Evaluated %d skills:\n\n", len(breakdown)))

	count := min(len(breakdown), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := breakdown[i]
		marker := "✗"
		if match.Matched {
			marker = "✓"
		}
		label := "bonus"
		if match.Required {
			label = string(match.MatchType)
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, match.Skill))
		sb.WriteString(fmt.Sprintf("  %d pts (%s)\n", match.Score, label))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(breakdown) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(breakdown)-maxItemsToShow))
	}

	p.printBox("SKILL BREAKDOWN", sb.String())
}

// PrintExplanation outputs the generated strengths, weaknesses and recommendations.
func (p *Printer) PrintExplanation(explanation *types.Explanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder

	writeSection := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(title + ":\n")
		count := min(len(items), 3)
		for i := 0; i < count; i++ {
			item := items[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(items) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-3))
		}
		sb.WriteString("\n")
	}

	writeSection("Strengths", explanation.Strengths)
	writeSection("Weaknesses", explanation.Weaknesses)
	writeSection("Recommendations", explanation.Recommendations)

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "No notable findings."
	}
	p.printBox("EXPLANATION", content)
}
