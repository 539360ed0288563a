package calibration

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"enginuity/internal/platform/db"
)

type Store struct {
	DB db.DB
}

func NewStore(conn db.DB) *Store {
	return &Store{DB: conn}
}

func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	return s.DB.Begin(ctx)
}

func (s *Store) InsertHeaderTx(ctx context.Context, tx pgx.Tx, engineerID string) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
    INSERT INTO calibration_ratings (engineer_id, evaluation_date)
    VALUES ($1, now())
    RETURNING id::text
  `, engineerID).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return "", ErrEngineerNotFound
		}
		return "", err
	}
	return id, nil
}

func (s *Store) InsertTechnicalTx(ctx context.Context, tx pgx.Tx, calibrationID string, r TechnicalDelivery) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO technical_delivery_ratings (calibration_rating_id, code_quality, timeliness_of_delivery,
      architectural_proficiency, comments)
    VALUES ($1,$2,$3,$4,$5)
  `, calibrationID, r.CodeQuality, r.TimelinessOfDelivery, r.ArchitecturalProficiency, nullIfEmpty(r.Comments))
	return err
}

func (s *Store) InsertCommunicationTx(ctx context.Context, tx pgx.Tx, calibrationID string, r Communication) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO communication_ratings (calibration_rating_id, effective_communication, cross_team_collaboration,
      architecture_influence, comments)
    VALUES ($1,$2,$3,$4,$5)
  `, calibrationID, r.EffectiveCommunication, r.CrossTeamCollaboration, r.ArchitectureInfluence, nullIfEmpty(r.Comments))
	return err
}

func (s *Store) LatestCalibration(ctx context.Context, engineerID string) (*LatestCalibration, error) {
	var cal LatestCalibration
	err := s.DB.QueryRow(ctx, `
    SELECT cr.id::text, e.id::text, e.first_name, e.last_name, e."current_role", e.current_level, e.department,
           cr.evaluation_date,
           tdr.code_quality, tdr.timeliness_of_delivery, tdr.architectural_proficiency, COALESCE(tdr.comments, ''),
           cmr.effective_communication, cmr.cross_team_collaboration, cmr.architecture_influence, COALESCE(cmr.comments, '')
    FROM calibration_ratings cr
    JOIN engineers e ON e.id = cr.engineer_id
    JOIN technical_delivery_ratings tdr ON tdr.calibration_rating_id = cr.id
    JOIN communication_ratings cmr ON cmr.calibration_rating_id = cr.id
    WHERE cr.engineer_id = $1
    ORDER BY cr.evaluation_date DESC, cr.created_at DESC, cr.id DESC
    LIMIT 1
  `, engineerID).Scan(
		&cal.ID, &cal.EngineerID, &cal.FirstName, &cal.LastName, &cal.Role, &cal.Level, &cal.Department,
		&cal.EvaluationDate,
		&cal.Technical.CodeQuality, &cal.Technical.TimelinessOfDelivery, &cal.Technical.ArchitecturalProficiency, &cal.Technical.Comments,
		&cal.Communication.EffectiveCommunication, &cal.Communication.CrossTeamCollaboration, &cal.Communication.ArchitectureInfluence, &cal.Communication.Comments,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

func (s *Store) LatestEvaluation(ctx context.Context, engineerID string) (*LatestEvaluation, error) {
	var ev LatestEvaluation
	err := s.DB.QueryRow(ctx, `
    SELECT evaluation_date, overall_score, performance_status, promotion_readiness, COALESCE(comments, '')
    FROM evaluations
    WHERE engineer_id = $1
    ORDER BY evaluation_date DESC, created_at DESC, id DESC
    LIMIT 1
  `, engineerID).Scan(&ev.EvaluationDate, &ev.OverallScore, &ev.PerformanceStatus, &ev.PromotionReadiness, &ev.Comments)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
