package period

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Get(ctx context.Context, id string) (Period, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,name,start_at,end_at,is_default FROM grading_periods WHERE id=$1`, id)
	return scanPeriod(row)
}

func (s *SQLStore) List(ctx context.Context) ([]Period, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,name,start_at,end_at,is_default FROM grading_periods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) Put(ctx context.Context, p Period) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO grading_periods (id,name,start_at,end_at,is_default)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, start_at=EXCLUDED.start_at,
		   end_at=EXCLUDED.end_at, is_default=EXCLUDED.is_default`,
		p.ID, p.Name, unixPtr(p.StartDate), unixPtr(p.EndDate), p.IsDefault)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM grading_periods WHERE id=$1`, id)
	return err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanPeriod(row scannable) (Period, error) {
	var p Period
	var start, end sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &start, &end, &p.IsDefault); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Period{}, ErrNotFound
		}
		return Period{}, err
	}
	p.StartDate = timePtr(start)
	p.EndDate = timePtr(end)
	return p, nil
}

func unixPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

func timePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0)
	return &t
}
