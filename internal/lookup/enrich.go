// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package lookup

import (
	"strings"

	"github.com/antonk-nf/algopath2-sub001/internal/metrics"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// Record is an arbitrary problem record keyed by field name. Only the
// "title" key is required.
type Record = map[string]any

// Record field names written by enrichment.
const (
	FieldTitle             = "title"
	FieldLikes             = "likes"
	FieldDislikes          = "dislikes"
	FieldOriginality       = "originality_score"
	FieldTotalVotes        = "total_votes"
	FieldPercentile        = "quality_percentile"
	FieldTier              = "quality_tier"
	FieldAge               = "age_category"
	FieldEngagement        = "engagement_score"
	FieldHasSolution       = "has_solution"
	FieldHasVideo          = "has_video_solution"
	FieldPaidOnly          = "is_paid_only"
	FieldAdjustedAccept    = "difficulty_adjusted_acceptance"
	FieldMetadataAvailable = "metadata_available"
)

// Metadata is the quality metadata merged onto records.
type Metadata struct {
	Likes             int64   `json:"likes"`
	Dislikes          int64   `json:"dislikes"`
	OriginalityScore  float64 `json:"originality_score"`
	TotalVotes        int64   `json:"total_votes"`
	QualityPercentile float64 `json:"quality_percentile"`
	QualityTier       string  `json:"quality_tier"`
	AgeCategory       string  `json:"age_category"`
	EngagementScore   float64 `json:"engagement_score"`
	HasSolution       bool    `json:"has_solution"`
	HasVideoSolution  bool    `json:"has_video_solution"`
	IsPaidOnly        bool    `json:"is_paid_only"`

	// DifficultyAdjustedAcceptance is only set for matched rows.
	DifficultyAdjustedAcceptance *float64 `json:"difficulty_adjusted_acceptance,omitempty"`
}

// DefaultMetadata returns the metadata merged onto records whose title
// matches no row.
func DefaultMetadata() Metadata {
	return Metadata{
		OriginalityScore:  quality.NeutralOriginality,
		QualityPercentile: 0.5,
		QualityTier:       quality.TierUnknown.String(),
		AgeCategory:       quality.AgeUnknown.String(),
	}
}

// FromProblem formats a table row as Metadata.
func FromProblem(p *quality.Problem) Metadata {
	adjusted := p.DifficultyAdjustedAcceptance
	return Metadata{
		Likes:             p.Likes,
		Dislikes:          p.Dislikes,
		OriginalityScore:  p.OriginalityScore,
		TotalVotes:        p.TotalVotes,
		QualityPercentile: p.QualityPercentile,
		QualityTier:       p.QualityTier.String(),
		AgeCategory:       p.AgeCategory.String(),
		EngagementScore:   p.EngagementScore,
		HasSolution:       p.HasSolution,
		HasVideoSolution:  p.HasVideoSolution,
		IsPaidOnly:        p.IsPaidOnly,

		DifficultyAdjustedAcceptance: &adjusted,
	}
}

// Fields returns the metadata as record fields.
func (m *Metadata) Fields() map[string]any {
	fields := map[string]any{
		FieldLikes:       m.Likes,
		FieldDislikes:    m.Dislikes,
		FieldOriginality: m.OriginalityScore,
		FieldTotalVotes:  m.TotalVotes,
		FieldPercentile:  m.QualityPercentile,
		FieldTier:        m.QualityTier,
		FieldAge:         m.AgeCategory,
		FieldEngagement:  m.EngagementScore,
		FieldHasSolution: m.HasSolution,
		FieldHasVideo:    m.HasVideoSolution,
		FieldPaidOnly:    m.IsPaidOnly,
	}
	if m.DifficultyAdjustedAcceptance != nil {
		fields[FieldAdjustedAccept] = *m.DifficultyAdjustedAcceptance
	}
	return fields
}

// TitleOf returns the record's title, or false when it is missing, not a
// string, or blank.
func TitleOf(r Record) (string, bool) {
	v, ok := r[FieldTitle]
	if !ok {
		return "", false
	}
	title, ok := v.(string)
	if !ok || strings.TrimSpace(title) == "" {
		return "", false
	}
	return title, true
}

// Enrich returns one record per input record in the same order. Matched
// records get the row's metadata and metadata_available=true; unmatched
// records get DefaultMetadata and metadata_available=false. Records without
// a usable title are returned unmodified.
//
// Input maps are never modified; enriched records are new maps.
func (s *Service) Enrich(records []Record) []Record {
	out := make([]Record, len(records))
	matched, unmatched, malformed := 0, 0, 0

	for i, rec := range records {
		title, ok := TitleOf(rec)
		if !ok {
			malformed++
			s.logger.Warn().Int("index", i).Msg("Record has no usable title, returned unmodified")
			out[i] = rec
			continue
		}

		meta, found := s.Lookup(title)
		if !found {
			meta = DefaultMetadata()
			unmatched++
		} else {
			matched++
		}

		enriched := make(Record, len(rec)+12)
		for k, v := range rec {
			enriched[k] = v
		}
		for k, v := range meta.Fields() {
			enriched[k] = v
		}
		enriched[FieldMetadataAvailable] = found
		out[i] = enriched
	}

	metrics.RecordEnrichment(matched, unmatched, malformed)
	s.logger.Debug().
		Int("records", len(records)).
		Int("matched", matched).
		Int("unmatched", unmatched).
		Int("malformed", malformed).
		Msg("Enriched records")

	return out
}
