// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package validation

import (
	"strings"
	"testing"
)

type planRequest struct {
	SkillLevel    string   `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationWeeks int      `json:"duration_weeks" validate:"gte=1,lte=52"`
	DailyGoal     int      `json:"daily_goal" validate:"gte=1"`
	FocusTopics   []string `json:"focus_topics,omitempty" validate:"omitempty,dive,min=1"`
	Note          string   `validate:"omitempty,max=5"`
}

type filterRequest struct {
	Criteria criteria `json:"criteria"`
}

type criteria struct {
	MinOriginality *float64 `json:"min_originality,omitempty" validate:"omitempty,gte=0,lte=1"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := planRequest{SkillLevel: "beginner", DurationWeeks: 4, DailyGoal: 2, FocusTopics: []string{"Array"}}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       planRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "weeks below minimum",
			req:       planRequest{DurationWeeks: 0, DailyGoal: 1},
			wantField: "duration_weeks",
			wantTag:   "gte",
			wantMsg:   "duration_weeks must be greater than or equal to 1",
		},
		{
			name:      "weeks above maximum",
			req:       planRequest{DurationWeeks: 60, DailyGoal: 1},
			wantField: "duration_weeks",
			wantTag:   "lte",
			wantMsg:   "duration_weeks must be less than or equal to 52",
		},
		{
			name:      "unknown skill level",
			req:       planRequest{SkillLevel: "expert", DurationWeeks: 1, DailyGoal: 1},
			wantField: "skill_level",
			wantTag:   "oneof",
			wantMsg:   "skill_level must be one of: beginner intermediate advanced",
		},
		{
			name:      "empty topic",
			req:       planRequest{DurationWeeks: 1, DailyGoal: 1, FocusTopics: []string{"Array", ""}},
			wantField: "focus_topics[1]",
			wantTag:   "min",
			wantMsg:   "focus_topics[1] must be at least 1 characters",
		},
		{
			name:      "go name without json tag",
			req:       planRequest{DurationWeeks: 1, DailyGoal: 1, Note: "too long"},
			wantField: "Note",
			wantTag:   "max",
			wantMsg:   "Note must be at most 5 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.req)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_NestedPointer(t *testing.T) {
	t.Parallel()

	v := 1.5
	verr := ValidateStruct(&filterRequest{Criteria: criteria{MinOriginality: &v}})
	if verr == nil {
		t.Fatal("expected error")
	}
	if got := verr.Errors()[0].Field(); got != "criteria.min_originality" {
		t.Errorf("Field() = %q, want criteria.min_originality", got)
	}

	ok := 0.5
	if verr := ValidateStruct(&filterRequest{Criteria: criteria{MinOriginality: &ok}}); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}
	if verr := ValidateStruct(&filterRequest{}); verr != nil {
		t.Errorf("nil pointer should pass: %v", verr)
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&planRequest{DurationWeeks: 1, DailyGoal: 0})
	if verr == nil {
		t.Fatal("expected error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != CodeValidationFailed {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationFailed)
	}
	if apiErr.Message != "daily_goal must be greater than or equal to 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "daily_goal" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&planRequest{SkillLevel: "guru"})
	if verr == nil {
		t.Fatal("expected error")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]any)
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("got %d fields, want 3", len(fields))
	}
	for _, want := range []string{"skill_level", "duration_weeks", "daily_goal"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("Message %q missing %s", apiErr.Message, want)
		}
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if ve.ToAPIError().Code != CodeValidationFailed {
		t.Error("empty error should still use VALIDATION_FAILED")
	}
}
