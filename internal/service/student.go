// Package service holds the business rules that sit between the HTTP
// handlers and the record store: email uniqueness, existence checks,
// "no data" rejections and the derived student queries.
//
// Services own no state besides their store handle, so one instance is
// shared by every request goroutine.
//
// Known limitation: uniqueness is check-then-act ("does the email exist?"
// then "save"). Two concurrent creates with the same email can both pass
// the check. The store has no UNIQUE index to catch it.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
)

// StudentService implements every student use case.
type StudentService struct {
	store storage.StudentStore
	log   *slog.Logger
}

// NewStudentService creates a StudentService. A nil logger falls back to slog.Default().
func NewStudentService(store storage.StudentStore, log *slog.Logger) *StudentService {
	if log == nil {
		log = slog.Default()
	}
	return &StudentService{store: store, log: log.With(slog.String("service", "student"))}
}

// Create stores a new student. The email must not belong to any existing student.
func (s *StudentService) Create(ctx context.Context, student types.Student) (types.Student, error) {
	s.log.Info("creating student", slog.String("email", student.Email))

	if err := s.ensureEmailAvailable(ctx, student.Email); err != nil {
		return types.Student{}, err
	}

	// The id is the store's to assign.
	student.ID = 0
	saved, err := s.store.SaveStudent(ctx, student)
	if err != nil {
		return types.Student{}, fmt.Errorf("create student: %w", err)
	}

	s.log.Info("student created", slog.Int64("id", saved.ID))
	return saved, nil
}

// GetByID returns the student with id.
func (s *StudentService) GetByID(ctx context.Context, id int64) (types.Student, error) {
	s.log.Debug("fetching student", slog.Int64("id", id))
	return s.findOrFail(ctx, id)
}

// GetAll returns every student, failing with ErrNoData when there are none.
func (s *StudentService) GetAll(ctx context.Context) ([]types.Student, error) {
	s.log.Info("fetching all students")

	students, err := s.store.FindAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all students: %w", err)
	}
	if err := s.ensureNotEmpty(students); err != nil {
		return nil, err
	}

	s.log.Debug("found students", slog.Int("count", len(students)))
	return students, nil
}

// Update overwrites name, gender and email of the student with id.
// Every field of patch is written, including ones the caller left unchanged.
func (s *StudentService) Update(ctx context.Context, id int64, patch types.Student) (types.Student, error) {
	s.log.Info("updating student", slog.Int64("id", id))

	existing, err := s.findOrFail(ctx, id)
	if err != nil {
		return types.Student{}, err
	}

	existing.Name = patch.Name
	existing.Gender = patch.Gender
	existing.Email = patch.Email

	updated, err := s.store.SaveStudent(ctx, existing)
	if err != nil {
		return types.Student{}, fmt.Errorf("update student %d: %w", id, err)
	}

	s.log.Debug("student updated", slog.Int64("id", id))
	return updated, nil
}

// DeleteByID removes the student with id and returns it as it was before deletion.
func (s *StudentService) DeleteByID(ctx context.Context, id int64) (types.Student, error) {
	s.log.Info("deleting student", slog.Int64("id", id))

	student, err := s.findOrFail(ctx, id)
	if err != nil {
		return types.Student{}, err
	}

	if err := s.store.DeleteStudentByID(ctx, id); err != nil {
		return types.Student{}, fmt.Errorf("delete student %d: %w", id, err)
	}

	s.log.Info("student deleted", slog.Int64("id", id))
	return student, nil
}

// DeleteAll removes every student. An already empty store is ErrNotFound.
func (s *StudentService) DeleteAll(ctx context.Context) error {
	s.log.Info("deleting all students")

	count, err := s.store.CountStudents(ctx)
	if err != nil {
		return fmt.Errorf("count students: %w", err)
	}
	if count == 0 {
		s.log.Warn("no students found to delete")
		return newError(ErrNotFound, "no students found to delete")
	}

	if err := s.store.DeleteAllStudents(ctx); err != nil {
		return fmt.Errorf("delete all students: %w", err)
	}

	s.log.Info("all students deleted", slog.Int64("count", count))
	return nil
}

// GetByGender matches gender exactly, ignoring case.
func (s *StudentService) GetByGender(ctx context.Context, gender string) ([]types.Student, error) {
	s.log.Info("fetching students by gender", slog.String("gender", gender))

	students, err := s.store.FindStudentsByGender(ctx, gender)
	if err != nil {
		return nil, fmt.Errorf("get students by gender: %w", err)
	}
	if err := s.ensureNotEmpty(students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetByEmailDomain returns students whose email ends with "@"+domain, ignoring case.
func (s *StudentService) GetByEmailDomain(ctx context.Context, domain string) ([]types.Student, error) {
	s.log.Info("fetching students by email domain", slog.String("domain", domain))

	students, err := s.store.FindAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("get students by email domain: %w", err)
	}

	suffix := "@" + strings.ToLower(domain)
	filtered := make([]types.Student, 0, len(students))
	for _, student := range students {
		if strings.HasSuffix(strings.ToLower(student.Email), suffix) {
			filtered = append(filtered, student)
		}
	}

	if err := s.ensureNotEmpty(filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// GetTopN returns the first n students ordered by name, ignoring case.
// n <= 0 selects nothing and therefore fails with ErrNoData.
func (s *StudentService) GetTopN(ctx context.Context, n int) ([]types.Student, error) {
	s.log.Info("fetching top students sorted by name", slog.Int("n", n))

	students, err := s.store.FindAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("get top students: %w", err)
	}

	// Stable, so equal names keep the store's id order.
	slices.SortStableFunc(students, func(a, b types.Student) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	top := students[:min(max(n, 0), len(students))]
	if err := s.ensureNotEmpty(top); err != nil {
		return nil, err
	}
	return top, nil
}

// ExistsByName reports whether any student is named name, ignoring case.
// It never fails with a business error.
func (s *StudentService) ExistsByName(ctx context.Context, name string) (bool, error) {
	s.log.Info("checking existence of student by name", slog.String("name", name))

	students, err := s.store.FindAllStudents(ctx)
	if err != nil {
		return false, fmt.Errorf("exists by name: %w", err)
	}

	for _, student := range students {
		if strings.EqualFold(student.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// ArchiveAndDeleteAll logs every student and then deletes them all.
// Nothing durable is written; the log lines are the archive.
func (s *StudentService) ArchiveAndDeleteAll(ctx context.Context) error {
	s.log.Info("archiving students before deletion")

	students, err := s.store.FindAllStudents(ctx)
	if err != nil {
		return fmt.Errorf("archive students: %w", err)
	}
	for _, student := range students {
		s.log.Info("archived student",
			slog.Int64("id", student.ID),
			slog.String("name", student.Name),
			slog.String("email", student.Email),
			slog.String("gender", student.Gender),
		)
	}

	return s.DeleteAll(ctx)
}

// SafeUpdateEmail replaces the email of the student with id.
//
// The duplicate check runs against every student, the target included,
// so resubmitting a student's current email fails with ErrDuplicateEmail.
func (s *StudentService) SafeUpdateEmail(ctx context.Context, id int64, newEmail string) (types.Student, error) {
	s.log.Info("updating student email", slog.Int64("id", id), slog.String("email", newEmail))

	if err := s.ensureEmailAvailable(ctx, newEmail); err != nil {
		return types.Student{}, err
	}

	student, err := s.findOrFail(ctx, id)
	if err != nil {
		return types.Student{}, err
	}

	student.Email = newEmail
	updated, err := s.store.SaveStudent(ctx, student)
	if err != nil {
		return types.Student{}, fmt.Errorf("update student %d email: %w", id, err)
	}
	return updated, nil
}

func (s *StudentService) findOrFail(ctx context.Context, id int64) (types.Student, error) {
	student, err := s.store.FindStudentByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Warn("student not found", slog.Int64("id", id))
		return types.Student{}, newError(ErrNotFound, "student not found with id: %d", id)
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("find student %d: %w", id, err)
	}
	return student, nil
}

func (s *StudentService) ensureEmailAvailable(ctx context.Context, email string) error {
	exists, err := s.store.ExistsStudentByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check student email: %w", err)
	}
	if exists {
		s.log.Warn("duplicate student email", slog.String("email", email))
		return newError(ErrDuplicateEmail, "student with email [%s] already exists", email)
	}
	return nil
}

func (s *StudentService) ensureNotEmpty(students []types.Student) error {
	if len(students) == 0 {
		s.log.Warn("no students found")
		return newError(ErrNoData, "no records are available")
	}
	return nil
}
