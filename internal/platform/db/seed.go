package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedCriterion struct {
	Name        string
	Description string
	Weight      float64
	Category    string
}

var defaultCriteria = []seedCriterion{
	{Name: "Technical Skills", Description: "Proficiency in required technologies and tools", Weight: 0.25, Category: "Technical"},
	{Name: "Code Quality", Description: "Clean, maintainable, and efficient code", Weight: 0.20, Category: "Technical"},
	{Name: "Problem Solving", Description: "Ability to solve complex technical problems", Weight: 0.15, Category: "Technical"},
	{Name: "Communication", Description: "Effective communication with team members", Weight: 0.15, Category: "Soft Skills"},
	{Name: "Leadership", Description: "Ability to lead and mentor others", Weight: 0.15, Category: "Soft Skills"},
	{Name: "Innovation", Description: "Contributing new ideas and improvements", Weight: 0.10, Category: "Technical"},
}

// Seed inserts the default evaluation criteria. Existing rows are left as-is.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	return WithTx(ctx, pool, func(tx pgx.Tx) error {
		for _, criterion := range defaultCriteria {
			if _, err := tx.Exec(ctx, `
    INSERT INTO evaluation_criteria (name, description, weight, category)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (name) DO NOTHING
  `, criterion.Name, criterion.Description, criterion.Weight, criterion.Category); err != nil {
				return err
			}
		}
		return nil
	})
}
