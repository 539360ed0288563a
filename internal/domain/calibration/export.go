package calibration

import (
	"fmt"
	"strings"
	"time"

	"enginuity/internal/platform/document"
)

const (
	exportContentType = "application/pdf"
	noComments        = "No comments provided"
	noAssessment      = "No detailed assessment available."
)

// BuildDocument lays out the export. The evaluation section is appended only
// when eval is non-nil.
func BuildDocument(cal LatestCalibration, eval *LatestEvaluation) document.Document {
	doc := document.New(fmt.Sprintf("%s %s performance evaluation", cal.FirstName, cal.LastName))

	doc.Heading(1, "Engineer Performance Evaluation")
	doc.Paragraph(
		document.Run{Text: cal.FirstName + " " + cal.LastName, Bold: true},
		document.Run{Text: fmt.Sprintf(" - %s (%s)", cal.Role, cal.Level)},
	)
	doc.Text("Department: " + cal.Department)
	doc.Text("Evaluation Date: " + formatDate(cal.EvaluationDate))

	doc.Heading(2, "Performance Summary")
	doc.Text(Synthesize(SummaryInputFor(cal)).Narrative)

	doc.Heading(2, "Calibration Ratings")
	doc.Heading(3, "Technical Delivery")
	doc.Text(ratingLine("Code Quality", cal.Technical.CodeQuality))
	doc.Text(ratingLine("Timeliness of Delivery", cal.Technical.TimelinessOfDelivery))
	doc.Text(ratingLine("Architectural Proficiency", cal.Technical.ArchitecturalProficiency))
	doc.Text("Comments: " + orPlaceholder(cal.Technical.Comments, noComments))
	doc.Heading(3, "Communication")
	doc.Text(ratingLine("Effective Communication", cal.Communication.EffectiveCommunication))
	doc.Text(ratingLine("Cross-team Collaboration", cal.Communication.CrossTeamCollaboration))
	doc.Text(ratingLine("Architecture Influence", cal.Communication.ArchitectureInfluence))
	doc.Text("Comments: " + orPlaceholder(cal.Communication.Comments, noComments))

	if eval != nil {
		doc.PageBreak()
		doc.Heading(2, "Performance Evaluation")
		doc.Text("Evaluation Date: " + formatDate(eval.EvaluationDate))
		doc.Heading(3, "Detailed Assessment")
		doc.Text(orPlaceholder(eval.Comments, noAssessment))
		doc.Heading(3, "Performance Scores")
		doc.Text(fmt.Sprintf("Overall Score: %.2f/5", eval.OverallScore))
		doc.Text("Performance Status: " + eval.PerformanceStatus)
		doc.Text("Promotion Readiness: " + eval.PromotionReadiness)
	}

	return *doc
}

// ExportFilename builds "<first>_<last>_performance_evaluation.pdf" with
// anything outside letters, digits and hyphens replaced by underscores.
func ExportFilename(firstName, lastName string) string {
	return sanitize(firstName) + "_" + sanitize(lastName) + "_performance_evaluation.pdf"
}

func sanitize(part string) string {
	part = strings.TrimSpace(part)
	if part == "" {
		return "engineer"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, part)
}

func ratingLine(label string, value *int) string {
	n := 0
	if value != nil {
		n = *value
	}
	return fmt.Sprintf("%s: %d/5", label, n)
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
