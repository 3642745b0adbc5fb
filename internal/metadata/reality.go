// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package metadata

import (
	"fmt"
	"sort"

	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// Insight rule thresholds.
const (
	easyMismatchAcceptance = 40.0
	mismatchExamples       = 3
	lowOriginality         = 0.6
)

// Insight types.
const (
	InsightDifficultyMismatch = "difficulty_mismatch"
	InsightQualityWarning     = "quality_warning"
)

// AcceptanceStats describes the acceptance rates of one difficulty group.
type AcceptanceStats struct {
	Difficulty string  `json:"difficulty"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean_acceptance_rate"`

	// Std is nil for groups with fewer than two rows.
	Std *float64 `json:"std_acceptance_rate"`

	Min float64 `json:"min_acceptance_rate"`
	Max float64 `json:"max_acceptance_rate"`
}

// Insight is a rule-based observation about the table.
type Insight struct {
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Count    int      `json:"count"`
	Examples []string `json:"examples,omitempty"`
}

// DifficultyReport is the result of DifficultyReality.
type DifficultyReport struct {
	Groups   []AcceptanceStats `json:"groups"`
	Insights []Insight         `json:"insights"`
}

// DifficultyReality compares labelled difficulty with observed acceptance.
// Groups are reported in first-occurrence order of their label.
func (s *Store) DifficultyReality() (DifficultyReport, error) {
	gen, err := s.snapshot("difficulty_reality")
	if err != nil {
		return DifficultyReport{}, err
	}
	return difficultyReport(gen.problems), nil
}

func difficultyReport(rows []quality.Problem) DifficultyReport {
	report := DifficultyReport{
		Groups:   make([]AcceptanceStats, 0),
		Insights: make([]Insight, 0),
	}

	groups := make(map[string][]float64)
	var order []string
	for i := range rows {
		label := string(rows[i].Difficulty)
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], rows[i].AcceptanceRate)
	}

	for _, label := range order {
		values := groups[label]
		minV, maxV := quality.MinMax(values)
		st := AcceptanceStats{
			Difficulty: label,
			Count:      len(values),
			Mean:       quality.Mean(values),
			Min:        minV,
			Max:        maxV,
		}
		if std, ok := quality.SampleStdDev(values); ok {
			st.Std = &std
		}
		report.Groups = append(report.Groups, st)
	}

	var mismatched []int
	lowQuality := 0
	for i := range rows {
		if rows[i].Difficulty == quality.DifficultyEasy && rows[i].AcceptanceRate < easyMismatchAcceptance {
			mismatched = append(mismatched, i)
		}
		if rows[i].OriginalityScore < lowOriginality {
			lowQuality++
		}
	}

	if len(mismatched) > 0 {
		sort.SliceStable(mismatched, func(a, b int) bool {
			return rows[mismatched[a]].AcceptanceRate < rows[mismatched[b]].AcceptanceRate
		})
		examples := make([]string, 0, mismatchExamples)
		for _, i := range mismatched {
			if len(examples) == mismatchExamples {
				break
			}
			examples = append(examples, rows[i].Title)
		}
		report.Insights = append(report.Insights, Insight{
			Type: InsightDifficultyMismatch,
			Message: fmt.Sprintf("%d Easy problems have acceptance below %.0f%%, harder than their label suggests",
				len(mismatched), easyMismatchAcceptance),
			Count:    len(mismatched),
			Examples: examples,
		})
	}

	if lowQuality > 0 {
		report.Insights = append(report.Insights, Insight{
			Type:    InsightQualityWarning,
			Message: fmt.Sprintf("%d problems have originality below %.0f%%", lowQuality, lowOriginality*100),
			Count:   lowQuality,
		})
	}

	return report
}
