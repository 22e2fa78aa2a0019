package report

import (
	"encoding/json"
	"fmt"
	"io"

	"goherit/app"
	"goherit/domain/core"
	"goherit/domain/posterior"
	"goherit/domain/run"
)

// JSONWriter renders the run manifest and posteriors as indented JSON.
type JSONWriter struct {
	Summary bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(summary bool) *JSONWriter {
	return &JSONWriter{Summary: summary}
}

type jsonReport struct {
	Run     *run.Manifest            `json:"run"`
	Source  string                   `json:"source"`
	People  []posterior.PersonResult `json:"people"`
	Summary *CohortSummary           `json:"summary,omitempty"`
}

// Write renders the result.
func (jw *JSONWriter) Write(w io.Writer, res *app.RunResult) error {
	payload := jsonReport{
		Run:    res.Manifest,
		Source: res.Source,
		People: res.Posteriors.People,
	}
	if jw.Summary {
		summary, err := Summarize(res.Posteriors)
		if err != nil {
			return fmt.Errorf("failed to summarize cohort: %w", err)
		}
		payload.Summary = summary
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// ForFormat returns the writer registered for a format name.
func ForFormat(format string, summary bool) (Writer, error) {
	switch format {
	case "text":
		return NewTextWriter(summary), nil
	case "json":
		return NewJSONWriter(summary), nil
	default:
		return nil, fmt.Errorf("%w: report format %q", core.ErrUnsupportedFormat, format)
	}
}
