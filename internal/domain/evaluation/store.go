package evaluation

import (
	"context"
	"errors"
	"time"

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

func (s *Store) InsertEvaluationTx(ctx context.Context, tx pgx.Tx, engineerID, comments string) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
    INSERT INTO evaluations (engineer_id, evaluation_date, overall_score, performance_status, promotion_readiness, comments)
    VALUES ($1, now(), 0, $2, $3, $4)
    RETURNING id::text
  `, engineerID, StatusInProgress, ReadinessNotReady, nullIfEmpty(comments)).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return "", ErrEngineerNotFound
		}
		return "", err
	}
	return id, nil
}

func (s *Store) InsertScoreTx(ctx context.Context, tx pgx.Tx, evaluationID, criterionID string, score ScoreInput) error {
	_, err := tx.Exec(ctx, `
    INSERT INTO evaluation_scores (evaluation_id, criteria_id, score, comments)
    VALUES ($1,$2,$3,$4)
  `, evaluationID, criterionID, score.Value, nullIfEmpty(score.Comments))
	return scoreInsertError(err)
}

const criterionForeignKey = "evaluation_scores_criteria_id_fkey"

// scoreInsertError reports an unknown criterion as ErrCriterionNotFound and
// leaves every other failure, including a missing evaluation, untouched.
func scoreInsertError(err error) error {
	if db.IsForeignKeyViolation(err) && db.ConstraintName(err) == criterionForeignKey {
		return ErrCriterionNotFound
	}
	return err
}

func (s *Store) UpdateOverallScoreTx(ctx context.Context, tx pgx.Tx, evaluationID string, overall float64) error {
	_, err := tx.Exec(ctx, `UPDATE evaluations SET overall_score = $1 WHERE id = $2`, overall, evaluationID)
	return err
}

func (s *Store) LatestScorecard(ctx context.Context, engineerID string) (*Scorecard, error) {
	var card Scorecard
	var date time.Time
	var overall float64
	err := s.DB.QueryRow(ctx, `
    SELECT id::text, evaluation_date, overall_score, performance_status, promotion_readiness, COALESCE(comments, '')
    FROM evaluations
    WHERE engineer_id = $1
    ORDER BY evaluation_date DESC, created_at DESC, id DESC
    LIMIT 1
  `, engineerID).Scan(&card.ID, &date, &overall, &card.PerformanceStatus, &card.PromotionReadiness, &card.Comments)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	card.EvaluationDate = &date
	card.OverallScore = &overall

	rows, err := s.DB.Query(ctx, `
    SELECT criteria_id::text, score, COALESCE(comments, '')
    FROM evaluation_scores
    WHERE evaluation_id = $1
  `, card.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	card.Scores = make(map[string]ScoreEntry)
	for rows.Next() {
		var criterionID string
		var entry ScoreEntry
		if err := rows.Scan(&criterionID, &entry.Value, &entry.Comments); err != nil {
			return nil, err
		}
		card.Scores[criterionID] = entry
	}
	return &card, rows.Err()
}

func (s *Store) ListCriteria(ctx context.Context) ([]Criterion, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id::text, name, description, weight::float8, category, created_at
    FROM evaluation_criteria
    ORDER BY category, weight DESC, name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Criterion, 0)
	for rows.Next() {
		var c Criterion
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Weight, &c.Category, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Recent(ctx context.Context, limit int) ([]RecentEvaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id::text, r.engineer_id::text, e.first_name, e.last_name, e."current_role", e.department,
           r.evaluation_date, r.overall_score, r.performance_status, r.promotion_readiness
    FROM (
      SELECT DISTINCT ON (engineer_id) id, engineer_id, evaluation_date, created_at, overall_score,
             performance_status, promotion_readiness
      FROM evaluations
      ORDER BY engineer_id, evaluation_date DESC, created_at DESC, id DESC
    ) r
    JOIN engineers e ON e.id = r.engineer_id
    ORDER BY r.evaluation_date DESC, r.created_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecentEvaluation, 0)
	for rows.Next() {
		var r RecentEvaluation
		if err := rows.Scan(&r.ID, &r.EngineerID, &r.FirstName, &r.LastName, &r.CurrentRole, &r.Department,
			&r.EvaluationDate, &r.OverallScore, &r.PerformanceStatus, &r.PromotionReadiness); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
