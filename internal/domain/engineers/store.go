package engineers

import (
	"context"

	"enginuity/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

const engineerColumns = `id::text, first_name, last_name, email, "current_role", current_level,
           department, start_date, time_in_role, COALESCE(last_year_rating, ''), created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEngineer(row scanner) (Engineer, error) {
	var e Engineer
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.CurrentRole, &e.CurrentLevel,
		&e.Department, &e.StartDate, &e.TimeInRole, &e.LastYearRating, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (s *Store) Create(ctx context.Context, p Profile) (Engineer, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO engineers (first_name, last_name, email, "current_role", current_level,
      department, start_date, time_in_role, last_year_rating)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING `+engineerColumns,
		p.FirstName, p.LastName, p.Email, p.CurrentRole, p.CurrentLevel,
		p.Department, p.StartDate, p.TimeInRole, nullIfEmpty(p.LastYearRating),
	)
	e, err := scanEngineer(row)
	if err != nil {
		return Engineer{}, mapError(err)
	}
	return e, nil
}

func (s *Store) Get(ctx context.Context, engineerID string) (Engineer, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+engineerColumns+`
    FROM engineers
    WHERE id = $1
  `, engineerID)
	e, err := scanEngineer(row)
	if err != nil {
		return Engineer{}, mapError(err)
	}
	return e, nil
}

func (s *Store) List(ctx context.Context) ([]Engineer, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+engineerColumns+`
    FROM engineers
    ORDER BY created_at DESC, id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Engineer, 0)
	for rows.Next() {
		e, err := scanEngineer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, engineerID string, p Profile) (Engineer, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE engineers
    SET first_name = $1,
        last_name = $2,
        email = $3,
        "current_role" = $4,
        current_level = $5,
        department = $6,
        start_date = $7,
        time_in_role = $8,
        last_year_rating = $9,
        updated_at = now()
    WHERE id = $10
    RETURNING `+engineerColumns,
		p.FirstName, p.LastName, p.Email, p.CurrentRole, p.CurrentLevel,
		p.Department, p.StartDate, p.TimeInRole, nullIfEmpty(p.LastYearRating), engineerID,
	)
	e, err := scanEngineer(row)
	if err != nil {
		return Engineer{}, mapError(err)
	}
	return e, nil
}

func (s *Store) Delete(ctx context.Context, engineerID string) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM engineers WHERE id = $1`, engineerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrEngineerNotFound
	}
	return nil
}

func mapError(err error) error {
	switch {
	case db.IsNotFound(err):
		return ErrEngineerNotFound
	case db.IsUniqueViolation(err):
		return ErrEmailConflict
	default:
		return err
	}
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
