package calibration

import (
	"time"

	"enginuity/internal/platform/document"
)

type TechnicalDelivery struct {
	CodeQuality              int    `json:"codeQuality" validate:"required,min=1,max=5"`
	TimelinessOfDelivery     int    `json:"timelinessOfDelivery" validate:"required,min=1,max=5"`
	ArchitecturalProficiency int    `json:"architecturalProficiency" validate:"required,min=1,max=5"`
	Comments                 string `json:"comments"`
}

type Communication struct {
	EffectiveCommunication int    `json:"effectiveCommunication" validate:"required,min=1,max=5"`
	CrossTeamCollaboration int    `json:"crossTeamCollaboration" validate:"required,min=1,max=5"`
	ArchitectureInfluence  int    `json:"architectureInfluence" validate:"required,min=1,max=5"`
	Comments               string `json:"comments"`
}

type Ratings struct {
	TechnicalDelivery TechnicalDelivery `json:"technicalDelivery"`
	Communication     Communication     `json:"communication"`
}

type RecordInput struct {
	EngineerID string  `json:"engineerId" validate:"required,uuid"`
	Ratings    Ratings `json:"ratings"`
}

// TechnicalScores are stored technical ratings. Older rows may lack values.
type TechnicalScores struct {
	CodeQuality              *int   `json:"codeQuality"`
	TimelinessOfDelivery     *int   `json:"timelinessOfDelivery"`
	ArchitecturalProficiency *int   `json:"architecturalProficiency"`
	Comments                 string `json:"comments"`
}

type CommunicationScores struct {
	EffectiveCommunication *int   `json:"effectiveCommunication"`
	CrossTeamCollaboration *int   `json:"crossTeamCollaboration"`
	ArchitectureInfluence  *int   `json:"architectureInfluence"`
	Comments               string `json:"comments"`
}

// LatestCalibration is the newest calibration event joined with the engineer
// profile.
type LatestCalibration struct {
	ID             string
	EngineerID     string
	FirstName      string
	LastName       string
	Role           string
	Level          string
	Department     string
	EvaluationDate time.Time
	Technical      TechnicalScores
	Communication  CommunicationScores
}

type LatestEvaluation struct {
	EvaluationDate     time.Time
	OverallScore       float64
	PerformanceStatus  string
	PromotionReadiness string
	Comments           string
}

type Writeup struct {
	Engineer          string              `json:"engineer"`
	Role              string              `json:"role"`
	Level             string              `json:"level"`
	EvaluationDate    time.Time           `json:"evaluationDate"`
	TechnicalDelivery TechnicalScores     `json:"technicalDelivery"`
	Communication     CommunicationScores `json:"communication"`
	Summary           string              `json:"summary"`
	Analysis          Summary             `json:"analysis"`
}

type Export struct {
	Document    document.Document
	Filename    string
	ContentType string
	Body        []byte
}
