// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package quality

// Difficulty is the difficulty label of a problem as it appears in the
// source table. Labels outside the known set are kept verbatim.
type Difficulty string

const (
	// DifficultyEasy is the "Easy" label.
	DifficultyEasy Difficulty = "Easy"
	// DifficultyMedium is the "Medium" label.
	DifficultyMedium Difficulty = "Medium"
	// DifficultyHard is the "Hard" label.
	DifficultyHard Difficulty = "Hard"
)

// String returns the label.
func (d Difficulty) String() string {
	return string(d)
}

// Problem is one row of the problem table: the raw engagement statistics
// loaded from the source plus the derived Metrics.
//
// Rows are immutable once a table generation is published. Callers that need
// a modified row must copy it.
type Problem struct {
	// Title is the natural key of the table.
	Title string `json:"title"`

	// Difficulty is the literal difficulty label (Easy, Medium, Hard).
	Difficulty Difficulty `json:"difficulty"`

	// Likes is the non-negative upvote count.
	Likes int64 `json:"likes"`

	// Dislikes is the non-negative downvote count.
	Dislikes int64 `json:"dislikes"`

	// AcceptanceRate is the submission acceptance percentage (0-100).
	AcceptanceRate float64 `json:"acceptance_rate"`

	HasSolution      bool `json:"has_solution"`
	HasVideoSolution bool `json:"has_video_solution"`
	IsPaidOnly       bool `json:"is_paid_only"`

	// Content is the optional problem statement.
	Content string `json:"content,omitempty"`

	// TopicTags is the optional list of topic tags.
	TopicTags []string `json:"topic_tags,omitempty"`

	Metrics
}

// Metrics holds the derived quality fields of a row.
type Metrics struct {
	// TotalVotes is Likes + Dislikes.
	TotalVotes int64 `json:"total_votes"`

	// OriginalityScore is Likes / TotalVotes, or 0.5 when TotalVotes is 0.
	OriginalityScore float64 `json:"originality_score"`

	// QualityPercentile is the fractional rank of OriginalityScore (0-1].
	QualityPercentile float64 `json:"quality_percentile"`

	// QualityTier buckets OriginalityScore.
	QualityTier Tier `json:"quality_tier"`

	// AgeCategory buckets TotalVotes.
	AgeCategory AgeCategory `json:"age_category"`

	// DifficultyAdjustedAcceptance is the fractional rank of AcceptanceRate
	// within the row's difficulty group.
	DifficultyAdjustedAcceptance float64 `json:"difficulty_adjusted_acceptance"`

	// EngagementScore combines normalized likes and solution availability.
	EngagementScore float64 `json:"engagement_score"`
}
