package sheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// SQLStore persists sheets in the drl_sheets table, with the nested
// per-criterion detail maps in a JSON column, on sqlite or postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Get(ctx context.Context, studentID, periodID string) (Sheet, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,student_id,period_id,self_score,class_score,bch_score,faculty_score,final_score,details_json,status,updated_at
		 FROM drl_sheets WHERE student_id=$1 AND period_id=$2`, studentID, periodID)
	return scanSheet(row)
}

func (s *SQLStore) Put(ctx context.Context, sh Sheet) error {
	dj, err := json.Marshal(sh.Details)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO drl_sheets (id,student_id,period_id,self_score,class_score,bch_score,faculty_score,final_score,details_json,status,updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 ON CONFLICT (id) DO UPDATE SET
		   self_score=EXCLUDED.self_score, class_score=EXCLUDED.class_score,
		   bch_score=EXCLUDED.bch_score, faculty_score=EXCLUDED.faculty_score,
		   final_score=EXCLUDED.final_score, details_json=EXCLUDED.details_json,
		   status=EXCLUDED.status, updated_at=EXCLUDED.updated_at`,
		sh.ID, sh.StudentID, sh.PeriodID, sh.SelfScore, sh.ClassScore, sh.BchScore,
		sh.FacultyScore, sh.FinalScore, string(dj), string(sh.Status), sh.UpdatedAt)
	return err
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Sheet, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if opts.PeriodID != "" {
		add("period_id=$%d", opts.PeriodID)
	}
	if opts.StudentID != "" {
		add("student_id=$%d", opts.StudentID)
	}
	if opts.Status != StatusNone {
		add("status=$%d", string(opts.Status))
	}
	q := `SELECT id,student_id,period_id,self_score,class_score,bch_score,faculty_score,final_score,details_json,status,updated_at FROM drl_sheets`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY student_id"
	if opts.Limit > 0 || opts.Offset > 0 {
		limit := opts.Limit
		if limit <= 0 {
			limit = math.MaxInt32 // sqlite needs a LIMIT before OFFSET
		}
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Sheet
	for rows.Next() {
		sh, err := scanSheet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSheet(row scannable) (Sheet, error) {
	var sh Sheet
	var dj, status string
	err := row.Scan(&sh.ID, &sh.StudentID, &sh.PeriodID, &sh.SelfScore, &sh.ClassScore,
		&sh.BchScore, &sh.FacultyScore, &sh.FinalScore, &dj, &status, &sh.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Sheet{}, ErrNotFound
		}
		return Sheet{}, err
	}
	sh.Status = Status(status)
	if err := json.Unmarshal([]byte(dj), &sh.Details); err != nil {
		return Sheet{}, err
	}
	return sh, nil
}
