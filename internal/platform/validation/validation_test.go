package validation

import (
	"errors"
	"testing"
)

type rating struct {
	CodeQuality int    `json:"codeQuality" validate:"required,min=1,max=5"`
	Comments    string `json:"comments"`
}

type payload struct {
	EngineerID string            `json:"engineerId" validate:"required,uuid"`
	Email      string            `json:"email" validate:"omitempty,email"`
	Technical  rating            `json:"technicalDelivery"`
	Scores     map[string]scored `json:"scores" validate:"required,min=1,dive,keys,uuid,endkeys"`
}

type scored struct {
	Value float64 `json:"value" validate:"gte=0,lte=5"`
}

func TestStructCollectsIssues(t *testing.T) {
	err := Struct(payload{
		EngineerID: "not-a-uuid",
		Email:      "nope",
		Technical:  rating{CodeQuality: 7},
		Scores:     map[string]scored{"8d7f7c2a-3c43-4f25-9c0e-8f9a2f0e4b11": {Value: 6}},
	})
	issues, ok := Issues(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	want := map[string]string{
		"engineerId":                    "must be a valid UUID",
		"email":                         "must be a valid email address",
		"technicalDelivery.codeQuality": "must be at most 5",
	}
	found := map[string]string{}
	for _, issue := range issues {
		found[issue.Field] = issue.Reason
	}
	for field, reason := range want {
		if found[field] != reason {
			t.Fatalf("expected %s %q, got %q (all: %v)", field, reason, found[field], issues)
		}
	}
	if len(issues) != 4 {
		t.Fatalf("expected 4 issues including the score range, got %v", issues)
	}
}

func TestStructEmptyMap(t *testing.T) {
	err := Struct(payload{
		EngineerID: "8d7f7c2a-3c43-4f25-9c0e-8f9a2f0e4b11",
		Technical:  rating{CodeQuality: 3},
		Scores:     map[string]scored{},
	})
	issues, ok := Issues(err)
	if !ok || len(issues) != 1 || issues[0].Field != "scores" {
		t.Fatalf("expected a single scores issue, got %v", err)
	}
}

func TestStructValid(t *testing.T) {
	err := Struct(payload{
		EngineerID: "8d7f7c2a-3c43-4f25-9c0e-8f9a2f0e4b11",
		Technical:  rating{CodeQuality: 1},
		Scores:     map[string]scored{"8d7f7c2a-3c43-4f25-9c0e-8f9a2f0e4b11": {Value: 0}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIssuesIgnoresOtherErrors(t *testing.T) {
	if _, ok := Issues(errors.New("boom")); ok {
		t.Fatal("expected plain errors to be ignored")
	}
	if _, ok := Issues(Invalid("scores", "is required")); !ok {
		t.Fatal("expected Invalid to produce a validation error")
	}
}
