// Package storage defines the record store contract: the set of
// methods any database backend must satisfy to work with this
// application.
//
// WHY AN INTERFACE?
// ─────────────────
// Services (the business-rule layer) should not know or care which
// database they are talking to. By depending only on these interfaces:
//
//   - Switching databases = pick another implementation in main.go.
//     sqlite and postgres both live under this package.
//
//   - Writing tests = pass a fake/mock that satisfies the interface.
//     No real database needed for unit tests (see storage/mocks).
//
// The store is deliberately dumb: it never checks uniqueness or
// emptiness. Those rules belong to internal/service.
package storage

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks StudentStore,TeacherStore

import (
	"context"
	"errors"

	"github.com/aanand-mishra/school-api/internal/types"
)

// ErrNotFound is returned (optionally wrapped) by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// StudentStore is the persistence contract for students.
type StudentStore interface {
	// FindStudentByID fetches a single student by primary key.
	// Returns ErrNotFound if no row matches.
	FindStudentByID(ctx context.Context, id int64) (types.Student, error)

	// FindAllStudents returns every student, ordered by id.
	// Returns an empty slice (not nil) if there are none.
	FindAllStudents(ctx context.Context) ([]types.Student, error)

	// FindStudentsByGender matches gender exactly, ignoring case.
	FindStudentsByGender(ctx context.Context, gender string) ([]types.Student, error)

	// SaveStudent inserts when student.ID is zero, otherwise inserts or
	// replaces the row with that id. Returns the stored record.
	SaveStudent(ctx context.Context, student types.Student) (types.Student, error)

	// DeleteStudentByID removes a student row. Deleting a missing id is not an error.
	DeleteStudentByID(ctx context.Context, id int64) error

	DeleteAllStudents(ctx context.Context) error

	CountStudents(ctx context.Context) (int64, error)

	// ExistsStudentByEmail reports whether any student has exactly this email.
	ExistsStudentByEmail(ctx context.Context, email string) (bool, error)
}

// TeacherStore is the persistence contract for teachers.
type TeacherStore interface {
	SaveTeacher(ctx context.Context, teacher types.Teacher) (types.Teacher, error)
	ExistsTeacherByEmail(ctx context.Context, email string) (bool, error)
}

// Storage is what main.go wires: one backend serving every resource.
type Storage interface {
	StudentStore
	TeacherStore

	// Close releases the underlying connection pool.
	Close() error
}
