// Package export writes screening results to spreadsheet reports for sharing
// outside the terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hireloop/resume-ranker/internal/candidate"
)

const (
	summarySheet    = "Summary"
	candidatesSheet = "Candidates"
)

var candidateHeader = []string{
	"Rank", "ID", "Name", "Location", "Current Role", "Current Company",
	"Score", "Recommendation", "Strengths", "Weaknesses",
}

// WriteExcel writes a two-sheet workbook: a summary of the screening run and
// the full candidate list ranked by score.
func WriteExcel(path string, list *candidate.Candidates) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return fmt.Errorf("creating candidates sheet: %w", err)
	}

	if err := writeSummary(f, list); err != nil {
		return err
	}
	if err := writeCandidates(f, list.SortedByScore()); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, list *candidate.Candidates) error {
	counts := map[candidate.Recommendation]int{}
	var total float64
	for _, c := range list.Items {
		counts[c.Recommendation]++
		total += c.Score
	}

	average := 0.0
	if list.Len() > 0 {
		average = candidate.Round1(total / float64(list.Len()))
	}

	rows := [][]any{
		{"Candidates screened", list.Len()},
		{"Average score", average},
		{"Approve", counts[candidate.Approve]},
		{"Hold", counts[candidate.Hold]},
		{"Reject", counts[candidate.Reject]},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("building summary cell: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	return nil
}

func writeCandidates(f *excelize.File, ranked []*candidate.Candidate) error {
	header := make([]any, len(candidateHeader))
	for i, h := range candidateHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(candidatesSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, c := range ranked {
		row := []any{
			i + 1,
			c.ID,
			c.Name,
			c.Location,
			c.CurrentRole,
			c.CurrentCompany,
			c.Score,
			string(c.Recommendation),
			strings.Join(c.Strengths, "; "),
			strings.Join(c.Weaknesses, "; "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("building candidate cell: %w", err)
		}
		if err := f.SetSheetRow(candidatesSheet, cell, &row); err != nil {
			return fmt.Errorf("writing candidate row: %w", err)
		}
	}
	return nil
}
