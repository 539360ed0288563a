package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"enginuity/internal/platform/db"
	"enginuity/internal/platform/validation"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Submit records the evaluation header, one score row per criterion and the
// resulting overall score in a single transaction.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Submission, error) {
	in.EngineerID = strings.TrimSpace(in.EngineerID)
	in.Comments = strings.TrimSpace(in.Comments)
	if err := validation.Struct(in); err != nil {
		return Submission{}, err
	}

	criterionIDs := make([]string, 0, len(in.Scores))
	for id := range in.Scores {
		criterionIDs = append(criterionIDs, id)
	}
	sort.Strings(criterionIDs)

	values := make([]float64, 0, len(criterionIDs))
	for _, id := range criterionIDs {
		values = append(values, in.Scores[id].Value)
	}
	overall := OverallScore(values)

	var submission Submission
	err := db.WithTx(ctx, s.store, func(tx pgx.Tx) error {
		evaluationID, err := s.store.InsertEvaluationTx(ctx, tx, in.EngineerID, in.Comments)
		if err != nil {
			return err
		}
		for _, criterionID := range criterionIDs {
			if err := s.store.InsertScoreTx(ctx, tx, evaluationID, criterionID, in.Scores[criterionID]); err != nil {
				return err
			}
		}
		if err := s.store.UpdateOverallScoreTx(ctx, tx, evaluationID, overall); err != nil {
			return err
		}
		submission = Submission{ID: evaluationID, OverallScore: overall}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEngineerNotFound) || errors.Is(err, ErrCriterionNotFound) {
			return Submission{}, err
		}
		return Submission{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return submission, nil
}

// Latest returns the most recent evaluation's scores. An engineer without
// evaluations yields an empty scorecard.
func (s *Service) Latest(ctx context.Context, engineerID string) (Scorecard, error) {
	if _, err := uuid.Parse(engineerID); err != nil {
		return Scorecard{}, validation.Invalid("engineerId", "must be a valid UUID")
	}
	card, err := s.store.LatestScorecard(ctx, engineerID)
	if err != nil {
		return Scorecard{}, err
	}
	if card == nil {
		return Scorecard{Scores: map[string]ScoreEntry{}}, nil
	}
	if card.Scores == nil {
		card.Scores = map[string]ScoreEntry{}
	}
	return *card, nil
}

// Recent lists the latest evaluation of each evaluated engineer, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]RecentEvaluation, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.store.Recent(ctx, limit)
}
