package calibration

import (
	"fmt"
	"math"
	"strings"
)

var (
	technicalAreas     = [3]string{"code quality", "timeliness of delivery", "architectural proficiency"}
	communicationAreas = [3]string{"effective communication", "cross-team collaboration", "architecture influence"}
)

// SummaryInput carries the six calibration sub-scores. A nil score counts as 0.
type SummaryInput struct {
	FirstName     string
	LastName      string
	Role          string
	Level         string
	Technical     [3]*float64
	Communication [3]*float64
}

type Summary struct {
	TechnicalAvg          float64 `json:"technicalAvg"`
	CommunicationAvg      float64 `json:"communicationAvg"`
	OverallAvg            float64 `json:"overallAvg"`
	Band                  string  `json:"band"`
	Context               string  `json:"context"`
	TechnicalRating       string  `json:"technicalRating"`
	CommunicationRating   string  `json:"communicationRating"`
	TechnicalStrength     string  `json:"technicalStrength"`
	CommunicationStrength string  `json:"communicationStrength"`
	Narrative             string  `json:"-"`
}

// Synthesize turns calibration sub-scores into a three-sentence narrative.
// Band thresholds are inclusive and applied to unrounded averages; the
// reported averages are rounded to two decimals.
func Synthesize(in SummaryInput) Summary {
	technical := mean(in.Technical)
	communication := mean(in.Communication)
	overall := (technical + communication) / 2

	band, context := overallBand(overall)
	out := Summary{
		TechnicalAvg:          round2(technical),
		CommunicationAvg:      round2(communication),
		OverallAvg:            round2(overall),
		Band:                  band,
		Context:               context,
		TechnicalRating:       groupRating(technical),
		CommunicationRating:   groupRating(communication),
		TechnicalStrength:     strongest(in.Technical, technicalAreas),
		CommunicationStrength: strongest(in.Communication, communicationAreas),
	}

	lines := []string{
		fmt.Sprintf("%s %s is currently %s in their role as %s at %s level, %s.",
			in.FirstName, in.LastName, out.Band, in.Role, in.Level, out.Context),
		fmt.Sprintf("Their technical delivery shows %s performance (%.1f/5 average), with particular strength in %s.",
			out.TechnicalRating, technical, out.TechnicalStrength),
		fmt.Sprintf("In terms of communication and collaboration, they demonstrate %s performance (%.1f/5 average), with notable impact in %s.",
			out.CommunicationRating, communication, out.CommunicationStrength),
	}
	out.Narrative = strings.Join(lines, "\n")
	return out
}

func scoreOrZero(score *float64) float64 {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return 0
	}
	return *score
}

func mean(scores [3]*float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += scoreOrZero(s)
	}
	return sum / float64(len(scores))
}

func overallBand(avg float64) (string, string) {
	switch {
	case avg >= 4:
		return "exceeding expectations", "demonstrating exceptional performance"
	case avg >= 3:
		return "meeting expectations", "showing solid performance"
	case avg >= 2:
		return "below expectations", "requiring improvement in several areas"
	default:
		return "significantly below expectations", "needing immediate attention and support"
	}
}

func groupRating(avg float64) string {
	switch {
	case avg >= 4:
		return "excellent"
	case avg >= 3:
		return "solid"
	case avg >= 2:
		return "inconsistent"
	default:
		return "concerning"
	}
}

// strongest keeps the earliest area on ties.
func strongest(scores [3]*float64, areas [3]string) string {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scoreOrZero(scores[i]) > scoreOrZero(scores[best]) {
			best = i
		}
	}
	return areas[best]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SummaryInputFor adapts a stored calibration for Synthesize.
func SummaryInputFor(cal LatestCalibration) SummaryInput {
	return SummaryInput{
		FirstName: cal.FirstName,
		LastName:  cal.LastName,
		Role:      cal.Role,
		Level:     cal.Level,
		Technical: [3]*float64{
			intScore(cal.Technical.CodeQuality),
			intScore(cal.Technical.TimelinessOfDelivery),
			intScore(cal.Technical.ArchitecturalProficiency),
		},
		Communication: [3]*float64{
			intScore(cal.Communication.EffectiveCommunication),
			intScore(cal.Communication.CrossTeamCollaboration),
			intScore(cal.Communication.ArchitectureInfluence),
		},
	}
}

func intScore(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
