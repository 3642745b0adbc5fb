// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

import (
	"time"

	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// Category is a recommendation category of a study plan.
type Category string

const (
	CategoryClassics    Category = "classics"
	CategoryHiddenGems  Category = "hidden_gems"
	CategoryRisingStars Category = "rising_stars"
	CategoryOther       Category = "other"
)

// planCategories is the fixed allocation and layout order.
var planCategories = []Category{
	CategoryClassics,
	CategoryHiddenGems,
	CategoryRisingStars,
	CategoryOther,
}

// Strategy names a ranking formula.
type Strategy string

const (
	// StrategyQuality is 0.7 originality + 0.3 engagement.
	StrategyQuality Strategy = "quality"
	// StrategyPopularity is 0.6 normalized likes + 0.4 normalized votes.
	StrategyPopularity Strategy = "popularity"
	// StrategyHiddenGems is 0.8 originality - 0.2 normalized votes.
	StrategyHiddenGems Strategy = "hidden_gems"
	// StrategyBalanced is 0.4 originality + 0.3 engagement + 0.2 normalized
	// likes + 0.1 difficulty adjusted acceptance.
	StrategyBalanced Strategy = "balanced"
)

// ParseStrategy returns the named strategy. Unknown names fall back to
// StrategyBalanced.
func ParseStrategy(name string) Strategy {
	switch s := Strategy(name); s {
	case StrategyQuality, StrategyPopularity, StrategyHiddenGems, StrategyBalanced:
		return s
	default:
		return StrategyBalanced
	}
}

// SkillLevel is the learner's self-assessed level.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// QualityPreference names a category ratio preset.
type QualityPreference string

const (
	PreferenceBalanced      QualityPreference = "balanced"
	PreferenceQualityFirst  QualityPreference = "quality_first"
	PreferenceClassicsFirst QualityPreference = "classics_first"
	PreferenceDiscovery     QualityPreference = "discovery"
)

// Recommendation is a scored problem with its rationale.
type Recommendation struct {
	Problem  quality.Problem `json:"problem"`
	Category Category        `json:"category"`
	Score    float64         `json:"score"`
	Reason   string          `json:"reason"`
}

// RecommendOptions configures a recommendation list.
type RecommendOptions struct {
	// Limit is clamped to the configured default and maximum.
	Limit int `json:"limit,omitempty" validate:"omitempty,gte=0"`

	// Topics keeps problems with any tag containing any topic
	// (case-insensitive). Empty means no topic filter.
	Topics []string `json:"topics,omitempty" validate:"omitempty,dive,min=1"`

	ExcludePaid bool `json:"exclude_paid,omitempty"`

	// Threshold overrides. Nil keeps the store default. Each list reads
	// only the thresholds its selector applies.
	MinOriginality *float64 `json:"min_originality,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxTotalVotes  *int64   `json:"max_total_votes,omitempty" validate:"omitempty,gte=0"`
	MinLikes       *int64   `json:"min_likes,omitempty" validate:"omitempty,gte=0"`
	MinVotes       *int64   `json:"min_votes,omitempty" validate:"omitempty,gte=0"`
	MaxVotes       *int64   `json:"max_votes,omitempty" validate:"omitempty,gte=0"`
}

func (o *RecommendOptions) selectorOptions() metadata.SelectorOptions {
	return metadata.SelectorOptions{
		ExcludePaid:    o.ExcludePaid,
		MinOriginality: o.MinOriginality,
		MaxTotalVotes:  o.MaxTotalVotes,
		MinLikes:       o.MinLikes,
		MinVotes:       o.MinVotes,
		MaxVotes:       o.MaxVotes,
	}
}

// DifficultyMix is a target share of each difficulty.
type DifficultyMix struct {
	Easy   float64 `json:"easy"`
	Medium float64 `json:"medium"`
	Hard   float64 `json:"hard"`
}

// WeekProgression is the difficulty target of one week.
type WeekProgression struct {
	Week int           `json:"week"`
	Mix  DifficultyMix `json:"mix"`
}

// StudyPlanRequest describes a study plan.
type StudyPlanRequest struct {
	// TargetCompanies are echoed in the plan. They do not filter problems.
	TargetCompanies []string `json:"target_companies,omitempty" validate:"omitempty,dive,min=1"`

	FocusTopics []string `json:"focus_topics,omitempty" validate:"omitempty,dive,min=1"`

	SkillLevel SkillLevel `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`

	DurationWeeks int `json:"duration_weeks" validate:"gte=1"`
	DailyGoal     int `json:"daily_goal" validate:"gte=1"`

	QualityPreference QualityPreference `json:"quality_preference,omitempty" validate:"omitempty,oneof=balanced quality_first classics_first discovery"`

	ExcludePaid bool `json:"exclude_paid,omitempty"`
}

// WeeklyScheduleRequest describes a one-week schedule.
type WeeklyScheduleRequest struct {
	TargetCompanies []string `json:"target_companies,omitempty" validate:"omitempty,dive,min=1"`

	FocusTopics []string `json:"focus_topics,omitempty" validate:"omitempty,dive,min=1"`

	SkillLevel SkillLevel `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`

	// WeekNumber selects the progression target (1-based).
	WeekNumber int `json:"week_number" validate:"gte=1"`
	DailyGoal  int `json:"daily_goal" validate:"gte=1"`

	QualityPreference QualityPreference `json:"quality_preference,omitempty" validate:"omitempty,oneof=balanced quality_first classics_first discovery"`

	ExcludePaid bool `json:"exclude_paid,omitempty"`
}

// CategoryAllocation is the planned and delivered count of one category.
type CategoryAllocation struct {
	Category Category `json:"category"`
	Ratio    float64  `json:"ratio"`
	Target   int      `json:"target"`
	Actual   int      `json:"actual"`
}

// Day is one day of a plan.
type Day struct {
	// Day is the 1-based day number within the plan.
	Day      int              `json:"day"`
	Problems []Recommendation `json:"problems"`
}

// Week is one week of a plan.
type Week struct {
	Week       int           `json:"week"`
	Target     DifficultyMix `json:"target_mix"`
	Actual     DifficultyMix `json:"actual_mix"`
	Days       []Day         `json:"days"`
	ProblemCnt int           `json:"problem_count"`
}

// StudyPlan is a generated, unpersisted study plan.
type StudyPlan struct {
	ID            string               `json:"id"`
	CreatedAt     time.Time            `json:"created_at"`
	Request       StudyPlanRequest     `json:"request"`
	TotalProblems int                  `json:"total_problems"`
	Scheduled     int                  `json:"scheduled_problems"`
	Allocations   []CategoryAllocation `json:"allocations"`
	Weeks         []Week               `json:"weeks"`
	Insights      []string             `json:"insights"`
}

// WeeklySchedule is a one-week plan.
type WeeklySchedule struct {
	ID          string                `json:"id"`
	CreatedAt   time.Time             `json:"created_at"`
	Request     WeeklyScheduleRequest `json:"request"`
	Allocations []CategoryAllocation  `json:"allocations"`
	Week        Week                  `json:"week"`
	Insights    []string              `json:"insights"`
}
