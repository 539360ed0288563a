package narrative

import "context"

type CriterionScore struct {
	Criterion string  `json:"criterion" validate:"required"`
	Score     float64 `json:"score" validate:"gte=0,lte=5"`
}

// Request asks for a manager-style write-up. Scores keep the caller's order.
type Request struct {
	Scores       []CriterionScore `json:"scores" validate:"required,min=1,dive"`
	EngineerName string           `json:"engineerName"`
	Role         string           `json:"currentRole"`
	Department   string           `json:"department"`
}

// Gateway produces free-text write-ups. Failures are classified with Classify.
type Gateway interface {
	Generate(ctx context.Context, req Request) (string, error)
}
