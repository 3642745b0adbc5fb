// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/antonk-nf/algopath2-sub001/internal/metadata"
	"github.com/antonk-nf/algopath2-sub001/internal/metrics"
	"github.com/antonk-nf/algopath2-sub001/internal/quality"
)

// ErrInvalidRequest is returned for plan requests outside the configured
// limits and for out-of-range selector thresholds.
var ErrInvalidRequest = errors.New("invalid request")

// daysPerWeek is the fixed week length of a plan.
const daysPerWeek = 7

// presets are the category ratios per quality preference, in planCategories
// order (classics, hidden gems, rising stars, other).
var presets = map[QualityPreference][4]float64{
	PreferenceBalanced:      {0.4, 0.3, 0.2, 0.1},
	PreferenceQualityFirst:  {0.3, 0.4, 0.2, 0.1},
	PreferenceClassicsFirst: {0.6, 0.2, 0.1, 0.1},
	PreferenceDiscovery:     {0.2, 0.4, 0.3, 0.1},
}

// NormalizePreference maps an empty or unknown preference to
// PreferenceBalanced.
func NormalizePreference(pref QualityPreference) QualityPreference {
	if _, ok := presets[pref]; ok {
		return pref
	}
	return PreferenceBalanced
}

// Ratios returns the category ratios of a preference.
func Ratios(pref QualityPreference) map[Category]float64 {
	r := presets[NormalizePreference(pref)]
	out := make(map[Category]float64, len(planCategories))
	for i, cat := range planCategories {
		out[cat] = r[i]
	}
	return out
}

// allocate splits total over the categories. Every category but the last
// takes floor(ratio x total); the last absorbs the remainder so the counts
// sum to total.
func allocate(total int, ratios [4]float64) [4]int {
	var counts [4]int
	assigned := 0
	for i := 0; i < len(counts)-1; i++ {
		counts[i] = int(math.Floor(ratios[i]*float64(total) + 1e-9))
		assigned += counts[i]
	}
	counts[len(counts)-1] = total - assigned
	return counts
}

// planInput is the shared part of plan and weekly schedule requests.
type planInput struct {
	total       int
	daily       int
	weeks       int
	firstWeek   int
	skill       SkillLevel
	preference  QualityPreference
	topics      []string
	companies   []string
	excludePaid bool
}

// GenerateStudyPlan builds a plan of DurationWeeks x 7 x DailyGoal problems.
// Company targets are echoed but never filter problems. When the table
// cannot fill a category the shortfall moves to "other"; when the whole
// table is exhausted the plan is shorter than requested.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) GenerateStudyPlan(req StudyPlanRequest) (*StudyPlan, error) {
	if req.DurationWeeks < 1 || req.DurationWeeks > e.config.Limits.MaxWeeks {
		return nil, fmt.Errorf("%w: duration_weeks must be between 1 and %d, got %d",
			ErrInvalidRequest, e.config.Limits.MaxWeeks, req.DurationWeeks)
	}
	if err := e.checkDailyGoal(req.DailyGoal); err != nil {
		return nil, err
	}
	req.SkillLevel = NormalizeSkill(req.SkillLevel)
	req.QualityPreference = NormalizePreference(req.QualityPreference)

	in := planInput{
		total:       req.DurationWeeks * daysPerWeek * req.DailyGoal,
		daily:       req.DailyGoal,
		weeks:       req.DurationWeeks,
		firstWeek:   1,
		skill:       req.SkillLevel,
		preference:  req.QualityPreference,
		topics:      req.FocusTopics,
		companies:   req.TargetCompanies,
		excludePaid: req.ExcludePaid,
	}
	problems, allocations, err := e.fill(&in)
	if err != nil {
		return nil, err
	}

	plan := &StudyPlan{
		ID:            e.newID(),
		CreatedAt:     e.now().UTC(),
		Request:       req,
		TotalProblems: in.total,
		Scheduled:     len(problems),
		Allocations:   allocations,
		Weeks:         layout(problems, &in),
		Insights:      insights(&in, len(problems)),
	}

	metrics.RecordStudyPlan(string(req.QualityPreference), plan.Scheduled)
	e.logger.Info().
		Str("plan_id", plan.ID).
		Str("skill_level", string(req.SkillLevel)).
		Str("preference", string(req.QualityPreference)).
		Int("weeks", req.DurationWeeks).
		Int("requested", plan.TotalProblems).
		Int("scheduled", plan.Scheduled).
		Msg("Study plan generated")

	return plan, nil
}

// GenerateWeeklySchedule builds a one-week plan of 7 x DailyGoal problems
// whose difficulty target is the progression of WeekNumber.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) GenerateWeeklySchedule(req WeeklyScheduleRequest) (*WeeklySchedule, error) {
	if req.WeekNumber < 1 || req.WeekNumber > e.config.Limits.MaxWeeks {
		return nil, fmt.Errorf("%w: week_number must be between 1 and %d, got %d",
			ErrInvalidRequest, e.config.Limits.MaxWeeks, req.WeekNumber)
	}
	if err := e.checkDailyGoal(req.DailyGoal); err != nil {
		return nil, err
	}
	req.SkillLevel = NormalizeSkill(req.SkillLevel)
	req.QualityPreference = NormalizePreference(req.QualityPreference)

	in := planInput{
		total:       daysPerWeek * req.DailyGoal,
		daily:       req.DailyGoal,
		weeks:       1,
		firstWeek:   req.WeekNumber,
		skill:       req.SkillLevel,
		preference:  req.QualityPreference,
		topics:      req.FocusTopics,
		companies:   req.TargetCompanies,
		excludePaid: req.ExcludePaid,
	}
	problems, allocations, err := e.fill(&in)
	if err != nil {
		return nil, err
	}

	schedule := &WeeklySchedule{
		ID:          e.newID(),
		CreatedAt:   e.now().UTC(),
		Request:     req,
		Allocations: allocations,
		Week:        layout(problems, &in)[0],
		Insights:    insights(&in, len(problems)),
	}

	metrics.RecordStudyPlan(string(req.QualityPreference), len(problems))
	e.logger.Info().
		Str("schedule_id", schedule.ID).
		Int("week", req.WeekNumber).
		Int("scheduled", len(problems)).
		Msg("Weekly schedule generated")

	return schedule, nil
}

func (e *Engine) checkDailyGoal(daily int) error {
	if daily < 1 || daily > e.config.Limits.MaxDailyGoal {
		return fmt.Errorf("%w: daily_goal must be between 1 and %d, got %d",
			ErrInvalidRequest, e.config.Limits.MaxDailyGoal, daily)
	}
	return nil
}

// fill selects the problems of every category, de-duplicated by title, and
// returns them concatenated in category order.
func (e *Engine) fill(in *planInput) ([]Recommendation, []CategoryAllocation, error) {
	ratios := presets[in.preference]
	targets := allocate(in.total, ratios)

	seen := make(map[string]struct{})
	buckets := make([][]Recommendation, len(planCategories))
	shortfall := 0

	for i, cat := range planCategories[:len(planCategories)-1] {
		target := targets[i]
		if target == 0 {
			continue
		}
		// Ask for enough extra rows to survive de-duplication.
		recs, err := e.recommend(cat, target+len(seen), in.topics, metadata.SelectorOptions{ExcludePaid: in.excludePaid})
		if err != nil {
			return nil, nil, err
		}
		for j := range recs {
			if len(buckets[i]) == target {
				break
			}
			if _, dup := seen[recs[j].Problem.Title]; dup {
				continue
			}
			seen[recs[j].Problem.Title] = struct{}{}
			buckets[i] = append(buckets[i], recs[j])
		}
		shortfall += target - len(buckets[i])
	}

	last := len(planCategories) - 1
	others, err := e.others(targets[last]+shortfall, in, seen)
	if err != nil {
		return nil, nil, err
	}
	buckets[last] = others

	allocations := make([]CategoryAllocation, len(planCategories))
	var problems []Recommendation
	for i, cat := range planCategories {
		allocations[i] = CategoryAllocation{
			Category: cat,
			Ratio:    ratios[i],
			Target:   targets[i],
			Actual:   len(buckets[i]),
		}
		problems = append(problems, buckets[i]...)
	}
	if problems == nil {
		problems = []Recommendation{}
	}
	return problems, allocations, nil
}

// others returns the best balanced-ranked rows not already chosen.
func (e *Engine) others(limit int, in *planInput, seen map[string]struct{}) ([]Recommendation, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := e.store.All()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", CategoryOther, err)
	}

	needles := normalizeTopics(in.topics)
	candidates := make([]quality.Problem, 0, len(rows))
	for i := range rows {
		p := &rows[i]
		if in.excludePaid && p.IsPaidOnly {
			continue
		}
		if _, dup := seen[p.Title]; dup {
			continue
		}
		if matchesTopics(p.TopicTags, needles) {
			candidates = append(candidates, *p)
		}
	}

	ranked, scores := rankProblems(candidates, StrategyBalanced)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]Recommendation, len(ranked))
	for i := range ranked {
		p := &ranked[i]
		seen[p.Title] = struct{}{}
		out[i] = Recommendation{
			Problem:  *p,
			Category: CategoryOther,
			Score:    round4(scores[i]),
			Reason: fmt.Sprintf("Balanced pick: %.0f%% originality, %s tier",
				p.OriginalityScore*100, p.QualityTier),
		}
	}
	metrics.RecordRecommendations(string(CategoryOther), len(out))
	return out, nil
}

// layout chunks problems sequentially into days and weeks.
func layout(problems []Recommendation, in *planInput) []Week {
	weeks := make([]Week, in.weeks)
	for w := range weeks {
		number := in.firstWeek + w
		week := Week{Week: number, Target: WeekMix(in.skill, number), Days: []Day{}}
		for d := 0; d < daysPerWeek; d++ {
			start := (w*daysPerWeek + d) * in.daily
			if start >= len(problems) {
				break
			}
			end := min(start+in.daily, len(problems))
			week.Days = append(week.Days, Day{Day: w*daysPerWeek + d + 1, Problems: problems[start:end]})
			week.ProblemCnt += end - start
		}
		week.Actual = actualMix(week.Days)
		weeks[w] = week
	}
	return weeks
}

func actualMix(days []Day) DifficultyMix {
	var easy, medium, hard, total float64
	for _, day := range days {
		for i := range day.Problems {
			total++
			switch day.Problems[i].Problem.Difficulty {
			case quality.DifficultyEasy:
				easy++
			case quality.DifficultyMedium:
				medium++
			case quality.DifficultyHard:
				hard++
			}
		}
	}
	if total == 0 {
		return DifficultyMix{}
	}
	return DifficultyMix{
		Easy:   round4(easy / total),
		Medium: round4(medium / total),
		Hard:   round4(hard / total),
	}
}

func insights(in *planInput, scheduled int) []string {
	r := presets[in.preference]
	out := []string{
		fmt.Sprintf("Quality mix: %.0f%% interview classics, %.0f%% hidden gems, %.0f%% rising stars, %.0f%% other",
			r[0]*100, r[1]*100, r[2]*100, r[3]*100),
		skillGuidance[in.skill],
	}
	if len(in.topics) > 0 {
		out = append(out, "Focused on topics: "+strings.Join(in.topics, ", "))
	}
	if len(in.companies) > 0 {
		out = append(out, fmt.Sprintf("Target companies (%s) are informational; problems are not filtered by company",
			strings.Join(in.companies, ", ")))
	}
	if scheduled < in.total {
		out = append(out, fmt.Sprintf("Only %d of %d requested problems match the selected filters", scheduled, in.total))
	}
	return out
}
