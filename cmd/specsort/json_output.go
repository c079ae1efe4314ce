package main

import (
	"encoding/json"
	"io"

	"specsort/internal/history"
	"specsort/internal/organize"
)

type reportJSON struct {
	RunID    string            `json:"run_id,omitempty"`
	Root     string            `json:"root"`
	Moved    int               `json:"moved"`
	Deleted  int               `json:"deleted"`
	Skipped  int               `json:"skipped"`
	Failed   int               `json:"failed"`
	Outcomes []fileOutcomeJSON `json:"outcomes"`
}

type fileOutcomeJSON struct {
	Name        string `json:"name"`
	Destination string `json:"destination,omitempty"`
	Action      string `json:"action"`
	Error       string `json:"error,omitempty"`
}

func writeReportJSON(out io.Writer, report *organize.Report) error {
	payload := reportJSON{
		RunID:    report.RunID,
		Root:     report.Root,
		Moved:    report.Count(history.ActionMoved),
		Deleted:  report.Count(history.ActionDeleted),
		Skipped:  report.Count(history.ActionSkipped),
		Failed:   report.Count(history.ActionFailed),
		Outcomes: []fileOutcomeJSON{},
	}
	for _, o := range report.Outcomes {
		rec := fileOutcomeJSON{
			Name:        o.Name,
			Destination: o.Destination,
			Action:      string(o.Action),
		}
		if o.Err != nil {
			rec.Error = o.Err.Error()
		}
		payload.Outcomes = append(payload.Outcomes, rec)
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

type planJSON struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Destination string `json:"destination,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func writePlansJSON(out io.Writer, root string, plans []organize.Plan) error {
	payload := struct {
		Root  string     `json:"root"`
		Plans []planJSON `json:"plans"`
	}{Root: root, Plans: []planJSON{}}
	for _, plan := range plans {
		payload.Plans = append(payload.Plans, planJSON{
			Name:        plan.Name,
			Kind:        plan.Classification.Kind.String(),
			Destination: plan.Destination,
			Reason:      plan.Classification.Reason,
		})
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
