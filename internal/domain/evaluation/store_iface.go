package evaluation

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type StoreAPI interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	InsertEvaluationTx(ctx context.Context, tx pgx.Tx, engineerID, comments string) (string, error)
	InsertScoreTx(ctx context.Context, tx pgx.Tx, evaluationID, criterionID string, score ScoreInput) error
	UpdateOverallScoreTx(ctx context.Context, tx pgx.Tx, evaluationID string, overall float64) error
	LatestScorecard(ctx context.Context, engineerID string) (*Scorecard, error)
	ListCriteria(ctx context.Context) ([]Criterion, error)
	Recent(ctx context.Context, limit int) ([]RecentEvaluation, error)
}
