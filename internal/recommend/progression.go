// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package recommend

// progressionTable holds the weekly difficulty targets per skill level. The
// last entry applies to every later week.
var progressionTable = map[SkillLevel][]DifficultyMix{
	SkillBeginner: {
		{Easy: 0.7, Medium: 0.3, Hard: 0.0},
		{Easy: 0.5, Medium: 0.5, Hard: 0.0},
		{Easy: 0.3, Medium: 0.6, Hard: 0.1},
		{Easy: 0.2, Medium: 0.6, Hard: 0.2},
	},
	SkillIntermediate: {
		{Easy: 0.3, Medium: 0.6, Hard: 0.1},
		{Easy: 0.2, Medium: 0.6, Hard: 0.2},
		{Easy: 0.1, Medium: 0.6, Hard: 0.3},
		{Easy: 0.1, Medium: 0.5, Hard: 0.4},
	},
	SkillAdvanced: {
		{Easy: 0.1, Medium: 0.5, Hard: 0.4},
		{Easy: 0.0, Medium: 0.5, Hard: 0.5},
		{Easy: 0.0, Medium: 0.4, Hard: 0.6},
	},
}

// skillGuidance is the fixed study advice per skill level.
var skillGuidance = map[SkillLevel]string{
	SkillBeginner:     "Start with Easy problems to build pattern recognition before moving to Medium",
	SkillIntermediate: "Focus on Medium problems and add Hard problems as patterns become familiar",
	SkillAdvanced:     "Prioritize Hard problems and timed practice on Medium problems",
}

// NormalizeSkill maps an empty or unknown level to SkillIntermediate.
func NormalizeSkill(skill SkillLevel) SkillLevel {
	if _, ok := progressionTable[skill]; ok {
		return skill
	}
	return SkillIntermediate
}

// WeekMix returns the difficulty target of a 1-based week. Weeks below 1
// are treated as week 1.
func WeekMix(skill SkillLevel, week int) DifficultyMix {
	table := progressionTable[NormalizeSkill(skill)]
	idx := week - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(table) {
		idx = len(table) - 1
	}
	return table[idx]
}

// DifficultyProgression returns the weekly difficulty targets for a skill
// level over the given number of weeks. Unknown skill levels use the
// intermediate table.
func DifficultyProgression(skill SkillLevel, weeks int) []WeekProgression {
	if weeks < 0 {
		weeks = 0
	}
	out := make([]WeekProgression, weeks)
	for i := range out {
		out[i] = WeekProgression{Week: i + 1, Mix: WeekMix(skill, i+1)}
	}
	return out
}
