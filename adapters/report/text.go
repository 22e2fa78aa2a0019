// Package report renders finished inference runs as text or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"goherit/app"
)

// Writer renders a finished run onto an output stream.
type Writer interface {
	Write(w io.Writer, res *app.RunResult) error
}

// TextWriter renders posteriors as an indented table, four decimals per
// probability, people in registry order.
type TextWriter struct {
	// Summary appends cohort statistics after the per-person blocks.
	Summary bool
}

// NewTextWriter creates a text writer.
func NewTextWriter(summary bool) *TextWriter {
	return &TextWriter{Summary: summary}
}

// Write renders the result.
func (tw *TextWriter) Write(w io.Writer, res *app.RunResult) error {
	var b strings.Builder
	for _, p := range res.Posteriors.People {
		fmt.Fprintf(&b, "%s:\n", p.Name)
		fmt.Fprintf(&b, "  Gene:\n")
		fmt.Fprintf(&b, "    2: %.4f\n", p.Gene.Two)
		fmt.Fprintf(&b, "    1: %.4f\n", p.Gene.One)
		fmt.Fprintf(&b, "    0: %.4f\n", p.Gene.Zero)
		fmt.Fprintf(&b, "  Trait:\n")
		fmt.Fprintf(&b, "    True: %.4f\n", p.Trait.Present)
		fmt.Fprintf(&b, "    False: %.4f\n", p.Trait.Absent)
	}

	if tw.Summary {
		summary, err := Summarize(res.Posteriors)
		if err != nil {
			return fmt.Errorf("failed to summarize cohort: %w", err)
		}
		writeTextSummary(&b, summary)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextSummary(b *strings.Builder, s *CohortSummary) {
	fmt.Fprintf(b, "Cohort:\n")
	fmt.Fprintf(b, "  People: %d\n", s.People)
	fmt.Fprintf(b, "  Carrier:\n")
	writeDescriptive(b, s.Carrier)
	fmt.Fprintf(b, "  Trait:\n")
	writeDescriptive(b, s.Trait)
}

func writeDescriptive(b *strings.Builder, d Descriptive) {
	fmt.Fprintf(b, "    Mean: %.4f\n", d.Mean)
	fmt.Fprintf(b, "    Median: %.4f\n", d.Median)
	fmt.Fprintf(b, "    Min: %.4f\n", d.Min)
	fmt.Fprintf(b, "    Max: %.4f\n", d.Max)
	fmt.Fprintf(b, "    StdDev: %.4f\n", d.StdDev)
}
