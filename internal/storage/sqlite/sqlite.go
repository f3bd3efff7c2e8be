// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. It is the default backend for local runs and tests.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// schema is idempotent, so it can run on every startup.
//
// email carries no UNIQUE constraint: uniqueness is checked by the
// service layer, which is where the error taxonomy lives.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL,
		gender TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_students_email ON students(email)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL,
		gender TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_teachers_email ON teachers(email)`,
}

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at path, creates the tables if they do
// not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet; it just validates
	// the driver name and data source name (DSN).
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// "database is locked" errors under concurrent requests.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite.New: create schema: %w", err)
		}
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// Students
// ─────────────────────────────────────────────────────────────────────────────

func (s *SQLite) FindStudentByID(ctx context.Context, id int64) (types.Student, error) {
	var student types.Student

	// QueryRow returns exactly one row. If the query finds no match the
	// error surfaces only when you call Scan.
	err := s.Db.QueryRowContext(ctx,
		"SELECT id, name, email, gender FROM students WHERE id = ? LIMIT 1", id,
	).Scan(&student.ID, &student.Name, &student.Email, &student.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("student %d: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("FindStudentByID: scan: %w", err)
	}

	return student, nil
}

func (s *SQLite) FindAllStudents(ctx context.Context) ([]types.Student, error) {
	return s.queryStudents(ctx, "FindAllStudents",
		"SELECT id, name, email, gender FROM students ORDER BY id")
}

// FindStudentsByGender compares with LOWER() on both sides, which is
// what "ignore case" means for the ASCII values genders are stored as.
func (s *SQLite) FindStudentsByGender(ctx context.Context, gender string) ([]types.Student, error) {
	return s.queryStudents(ctx, "FindStudentsByGender",
		"SELECT id, name, email, gender FROM students WHERE LOWER(gender) = LOWER(?) ORDER BY id",
		gender)
}

// SaveStudent is an upsert keyed on id.
//
// A zero ID lets SQLite pick the next AUTOINCREMENT value. A non-zero ID
// replaces the existing row's columns (ON CONFLICT ... DO UPDATE) or
// inserts the row with that id if it is gone.
func (s *SQLite) SaveStudent(ctx context.Context, student types.Student) (types.Student, error) {
	if student.ID == 0 {
		result, err := s.Db.ExecContext(ctx,
			"INSERT INTO students (name, email, gender) VALUES (?, ?, ?)",
			student.Name, student.Email, student.Gender,
		)
		if err != nil {
			return types.Student{}, fmt.Errorf("SaveStudent: insert: %w", err)
		}

		// LastInsertId returns the auto-generated primary key of the new row.
		id, err := result.LastInsertId()
		if err != nil {
			return types.Student{}, fmt.Errorf("SaveStudent: last insert id: %w", err)
		}
		student.ID = id
		return student, nil
	}

	_, err := s.Db.ExecContext(ctx,
		`INSERT INTO students (id, name, email, gender) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			gender = excluded.gender`,
		student.ID, student.Name, student.Email, student.Gender,
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("SaveStudent: upsert: %w", err)
	}

	return student, nil
}

func (s *SQLite) DeleteStudentByID(ctx context.Context, id int64) error {
	if _, err := s.Db.ExecContext(ctx, "DELETE FROM students WHERE id = ?", id); err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}
	return nil
}

func (s *SQLite) DeleteAllStudents(ctx context.Context) error {
	if _, err := s.Db.ExecContext(ctx, "DELETE FROM students"); err != nil {
		return fmt.Errorf("DeleteAllStudents: exec: %w", err)
	}
	return nil
}

func (s *SQLite) CountStudents(ctx context.Context) (int64, error) {
	var n int64
	if err := s.Db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&n); err != nil {
		return 0, fmt.Errorf("CountStudents: scan: %w", err)
	}
	return n, nil
}

func (s *SQLite) ExistsStudentByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.Db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM students WHERE email = ?)", email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsStudentByEmail: scan: %w", err)
	}
	return exists, nil
}

// queryStudents runs a multi-row SELECT of (id, name, email, gender).
//
// HOW Query + rows.Next() WORK:
// ──────────────────────────────
// Query (unlike QueryRow) returns *sql.Rows, a cursor over multiple rows.
// rows.Next() advances the cursor and returns false when exhausted.
// Always defer rows.Close() to release the database connection.
func (s *SQLite) queryStudents(ctx context.Context, op, query string, args ...any) ([]types.Student, error) {
	rows, err := s.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice so JSON encodes [] not null.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Email, &student.Gender); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return students, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Teachers
// ─────────────────────────────────────────────────────────────────────────────

func (s *SQLite) SaveTeacher(ctx context.Context, teacher types.Teacher) (types.Teacher, error) {
	if teacher.ID == 0 {
		result, err := s.Db.ExecContext(ctx,
			"INSERT INTO teachers (name, email, gender) VALUES (?, ?, ?)",
			teacher.Name, teacher.Email, teacher.Gender,
		)
		if err != nil {
			return types.Teacher{}, fmt.Errorf("SaveTeacher: insert: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return types.Teacher{}, fmt.Errorf("SaveTeacher: last insert id: %w", err)
		}
		teacher.ID = id
		return teacher, nil
	}

	_, err := s.Db.ExecContext(ctx,
		`INSERT INTO teachers (id, name, email, gender) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			gender = excluded.gender`,
		teacher.ID, teacher.Name, teacher.Email, teacher.Gender,
	)
	if err != nil {
		return types.Teacher{}, fmt.Errorf("SaveTeacher: upsert: %w", err)
	}
	return teacher, nil
}

func (s *SQLite) ExistsTeacherByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.Db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM teachers WHERE email = ?)", email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsTeacherByEmail: scan: %w", err)
	}
	return exists, nil
}
