// Package postgres implements storage.Storage on PostgreSQL through
// database/sql and the lib/pq driver.
//
// The queries mirror the sqlite package one for one; only placeholders
// ($1 instead of ?) and id generation (BIGSERIAL + RETURNING) differ.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id     BIGSERIAL PRIMARY KEY,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL,
		gender TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_students_email ON students(email)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id     BIGSERIAL PRIMARY KEY,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL,
		gender TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_teachers_email ON teachers(email)`,
}

// Postgres persists students and teachers in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

var _ storage.Storage = (*Postgres)(nil)

// New opens a pool for dsn, verifies it with a ping and creates the schema.
func New(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres.New: create schema: %w", err)
		}
	}

	return &Postgres{db: db}, nil
}

// NewFromDB wraps an already-open pool. The schema must exist.
func NewFromDB(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) FindStudentByID(ctx context.Context, id int64) (types.Student, error) {
	var s types.Student
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, email, gender FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("student %d: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("find student by id: %w", err)
	}
	return s, nil
}

func (p *Postgres) FindAllStudents(ctx context.Context) ([]types.Student, error) {
	return p.queryStudents(ctx, "find all students",
		`SELECT id, name, email, gender FROM students ORDER BY id`)
}

func (p *Postgres) FindStudentsByGender(ctx context.Context, gender string) ([]types.Student, error) {
	return p.queryStudents(ctx, "find students by gender",
		`SELECT id, name, email, gender FROM students WHERE LOWER(gender) = LOWER($1) ORDER BY id`,
		gender)
}

// SaveStudent inserts with a generated id, or upserts on an explicit one.
// After an explicit-id insert the sequence is not advanced; callers only
// pass ids they previously read back from this store.
func (p *Postgres) SaveStudent(ctx context.Context, s types.Student) (types.Student, error) {
	if s.ID == 0 {
		err := p.db.QueryRowContext(ctx,
			`INSERT INTO students (name, email, gender) VALUES ($1, $2, $3) RETURNING id`,
			s.Name, s.Email, s.Gender,
		).Scan(&s.ID)
		if err != nil {
			return types.Student{}, fmt.Errorf("insert student: %w", err)
		}
		return s, nil
	}

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO students (id, name, email, gender) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			gender = EXCLUDED.gender`,
		s.ID, s.Name, s.Email, s.Gender,
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("upsert student: %w", err)
	}
	return s, nil
}

func (p *Postgres) DeleteStudentByID(ctx context.Context, id int64) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

func (p *Postgres) DeleteAllStudents(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("delete all students: %w", err)
	}
	return nil
}

func (p *Postgres) CountStudents(ctx context.Context) (int64, error) {
	var n int64
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}

func (p *Postgres) ExistsStudentByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("student email exists: %w", err)
	}
	return exists, nil
}

func (p *Postgres) SaveTeacher(ctx context.Context, t types.Teacher) (types.Teacher, error) {
	if t.ID == 0 {
		err := p.db.QueryRowContext(ctx,
			`INSERT INTO teachers (name, email, gender) VALUES ($1, $2, $3) RETURNING id`,
			t.Name, t.Email, t.Gender,
		).Scan(&t.ID)
		if err != nil {
			return types.Teacher{}, fmt.Errorf("insert teacher: %w", err)
		}
		return t, nil
	}

	_, err := p.db.ExecContext(ctx,
		`INSERT INTO teachers (id, name, email, gender) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			gender = EXCLUDED.gender`,
		t.ID, t.Name, t.Email, t.Gender,
	)
	if err != nil {
		return types.Teacher{}, fmt.Errorf("upsert teacher: %w", err)
	}
	return t, nil
}

func (p *Postgres) ExistsTeacherByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("teacher email exists: %w", err)
	}
	return exists, nil
}

func (p *Postgres) queryStudents(ctx context.Context, op, query string, args ...any) ([]types.Student, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		var s types.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Gender); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return students, nil
}
