package calibration

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type StoreAPI interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	InsertHeaderTx(ctx context.Context, tx pgx.Tx, engineerID string) (string, error)
	InsertTechnicalTx(ctx context.Context, tx pgx.Tx, calibrationID string, ratings TechnicalDelivery) error
	InsertCommunicationTx(ctx context.Context, tx pgx.Tx, calibrationID string, ratings Communication) error
	LatestCalibration(ctx context.Context, engineerID string) (*LatestCalibration, error)
	LatestEvaluation(ctx context.Context, engineerID string) (*LatestEvaluation, error)
}
