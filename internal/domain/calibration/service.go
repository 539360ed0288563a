package calibration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"enginuity/internal/platform/db"
	"enginuity/internal/platform/document"
	"enginuity/internal/platform/validation"
)

type Service struct {
	store  StoreAPI
	render func(document.Document) ([]byte, error)
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, render: document.RenderPDF}
}

// Record writes the calibration header and both rating groups together.
// It is the only write path for calibration data.
func (s *Service) Record(ctx context.Context, in RecordInput) (string, error) {
	in.EngineerID = strings.TrimSpace(in.EngineerID)
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	var calibrationID string
	err := db.WithTx(ctx, s.store, func(tx pgx.Tx) error {
		id, err := s.store.InsertHeaderTx(ctx, tx, in.EngineerID)
		if err != nil {
			return err
		}
		if err := s.store.InsertTechnicalTx(ctx, tx, id, in.Ratings.TechnicalDelivery); err != nil {
			return err
		}
		if err := s.store.InsertCommunicationTx(ctx, tx, id, in.Ratings.Communication); err != nil {
			return err
		}
		calibrationID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEngineerNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return calibrationID, nil
}

func (s *Service) latest(ctx context.Context, engineerID string) (LatestCalibration, error) {
	if _, err := uuid.Parse(engineerID); err != nil {
		return LatestCalibration{}, validation.Invalid("engineerId", "must be a valid UUID")
	}
	cal, err := s.store.LatestCalibration(ctx, engineerID)
	if err != nil {
		return LatestCalibration{}, err
	}
	if cal == nil {
		return LatestCalibration{}, ErrCalibrationNotFound
	}
	return *cal, nil
}

// Writeup summarizes the engineer's most recent calibration.
func (s *Service) Writeup(ctx context.Context, engineerID string) (Writeup, error) {
	cal, err := s.latest(ctx, engineerID)
	if err != nil {
		return Writeup{}, err
	}
	summary := Synthesize(SummaryInputFor(cal))
	return Writeup{
		Engineer:          cal.FirstName + " " + cal.LastName,
		Role:              cal.Role,
		Level:             cal.Level,
		EvaluationDate:    cal.EvaluationDate,
		TechnicalDelivery: cal.Technical,
		Communication:     cal.Communication,
		Summary:           summary.Narrative,
		Analysis:          summary,
	}, nil
}

// Export renders the latest calibration, and the latest evaluation when one
// exists, as a PDF.
func (s *Service) Export(ctx context.Context, engineerID string) (Export, error) {
	cal, err := s.latest(ctx, engineerID)
	if err != nil {
		return Export{}, err
	}
	eval, err := s.store.LatestEvaluation(ctx, engineerID)
	if err != nil {
		return Export{}, err
	}

	doc := BuildDocument(cal, eval)
	body, err := s.render(doc)
	if err != nil {
		return Export{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return Export{
		Document:    doc,
		Filename:    ExportFilename(cal.FirstName, cal.LastName),
		ContentType: exportContentType,
		Body:        body,
	}, nil
}
