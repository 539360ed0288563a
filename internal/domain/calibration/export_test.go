package calibration

import (
	"strings"
	"testing"
	"time"

	"enginuity/internal/platform/document"
)

func intp(v int) *int { return &v }

func sampleCalibration() LatestCalibration {
	return LatestCalibration{
		ID:             "cal-1",
		EngineerID:     "eng-1",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Role:           "Software Engineer",
		Level:          "Senior",
		Department:     "Platform",
		EvaluationDate: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Technical: TechnicalScores{
			CodeQuality: intp(5), TimelinessOfDelivery: intp(4), ArchitecturalProficiency: intp(4), Comments: "good",
		},
		Communication: CommunicationScores{
			EffectiveCommunication: intp(3), CrossTeamCollaboration: intp(3), ArchitectureInfluence: intp(3),
		},
	}
}

func TestBuildDocumentWithoutEvaluation(t *testing.T) {
	doc := BuildDocument(sampleCalibration(), nil)

	want := []string{
		"Engineer Performance Evaluation",
		"Ada Lovelace - Software Engineer (Senior)",
		"Department: Platform",
		"Evaluation Date: 2026-03-14",
		"Performance Summary",
	}
	lines := doc.Lines()
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
	if !doc.Blocks[1].Runs[0].Bold {
		t.Fatal("expected the engineer name to be bold")
	}
	for _, line := range []string{"Code Quality: 5/5", "Timeliness of Delivery: 4/5", "Comments: good", "Comments: No comments provided", "Architecture Influence: 3/5"} {
		if !doc.Has(line) {
			t.Fatalf("expected %q in document", line)
		}
	}
	if doc.Has("Performance Evaluation") {
		t.Fatal("expected the evaluation section to be omitted")
	}
	for _, b := range doc.Blocks {
		if b.Kind == document.KindPageBreak {
			t.Fatal("expected no page break without an evaluation")
		}
	}
	if !strings.HasPrefix(lines[5], "Ada Lovelace is currently meeting expectations") {
		t.Fatalf("expected summary narrative, got %q", lines[5])
	}
}

func TestBuildDocumentWithEvaluation(t *testing.T) {
	eval := &LatestEvaluation{
		EvaluationDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		OverallScore:       3.8333,
		PerformanceStatus:  "In Progress",
		PromotionReadiness: "Not Ready",
	}
	doc := BuildDocument(sampleCalibration(), eval)

	for _, line := range []string{
		"Performance Evaluation",
		"Evaluation Date: 2026-02-01",
		"Detailed Assessment",
		"No detailed assessment available.",
		"Overall Score: 3.83/5",
		"Performance Status: In Progress",
		"Promotion Readiness: Not Ready",
	} {
		if !doc.Has(line) {
			t.Fatalf("expected %q in document", line)
		}
	}
}

func TestBuildDocumentMissingRatingsRenderZero(t *testing.T) {
	cal := sampleCalibration()
	cal.Technical.TimelinessOfDelivery = nil
	doc := BuildDocument(cal, nil)
	if !doc.Has("Timeliness of Delivery: 0/5") {
		t.Fatal("expected missing rating to render as 0/5")
	}
}

func TestExportFilename(t *testing.T) {
	tests := map[string][2]string{
		"Ada_Lovelace_performance_evaluation.pdf":     {"Ada", "Lovelace"},
		"Jean-Luc_Picard_performance_evaluation.pdf":  {"Jean-Luc", "Picard"},
		"Mary_Ann_O_Brien_performance_evaluation.pdf": {"Mary Ann", "O'Brien"},
		"engineer_Doe_performance_evaluation.pdf":     {" ", "Doe"},
		"Ren_e_Smith_performance_evaluation.pdf":      {"Ren\"e", "Smith"},
	}
	for want, parts := range tests {
		if got := ExportFilename(parts[0], parts[1]); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
