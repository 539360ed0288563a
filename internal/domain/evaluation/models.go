package evaluation

import "time"

const (
	StatusInProgress  = "In Progress"
	ReadinessNotReady = "Not Ready"
)

type Criterion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weight      float64   `json:"weight"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ScoreInput struct {
	Value    float64 `json:"value" validate:"gte=0,lte=5"`
	Comments string  `json:"comments"`
}

// SubmitInput is one evaluation keyed by criterion id.
type SubmitInput struct {
	EngineerID string                `json:"engineerId" validate:"required,uuid"`
	Scores     map[string]ScoreInput `json:"scores" validate:"required,min=1,dive,keys,uuid,endkeys,omitempty"`
	Comments   string                `json:"comments"`
}

type Submission struct {
	ID           string  `json:"id"`
	OverallScore float64 `json:"overallScore"`
}

type ScoreEntry struct {
	Value    float64 `json:"value"`
	Comments string  `json:"comments"`
}

// Scorecard is the latest evaluation for an engineer. The zero value with an
// empty Scores map means no evaluation exists yet.
type Scorecard struct {
	ID                 string                `json:"id,omitempty"`
	EvaluationDate     *time.Time            `json:"evaluationDate,omitempty"`
	OverallScore       *float64              `json:"overallScore,omitempty"`
	PerformanceStatus  string                `json:"performanceStatus,omitempty"`
	PromotionReadiness string                `json:"promotionReadiness,omitempty"`
	Comments           string                `json:"comments,omitempty"`
	Scores             map[string]ScoreEntry `json:"scores"`
}

type RecentEvaluation struct {
	ID                 string    `json:"id"`
	EngineerID         string    `json:"engineerId"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	CurrentRole        string    `json:"currentRole"`
	Department         string    `json:"department"`
	EvaluationDate     time.Time `json:"evaluationDate"`
	OverallScore       float64   `json:"overallScore"`
	PerformanceStatus  string    `json:"performanceStatus"`
	PromotionReadiness string    `json:"promotionReadiness"`
}
