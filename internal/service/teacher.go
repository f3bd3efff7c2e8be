package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
)

// TeacherService only supports creation so far.
type TeacherService struct {
	store storage.TeacherStore
	log   *slog.Logger
}

func NewTeacherService(store storage.TeacherStore, log *slog.Logger) *TeacherService {
	if log == nil {
		log = slog.Default()
	}
	return &TeacherService{store: store, log: log.With(slog.String("service", "teacher"))}
}

// Create stores a new teacher. The email must not belong to any existing teacher.
func (s *TeacherService) Create(ctx context.Context, teacher types.Teacher) (types.Teacher, error) {
	s.log.Info("creating teacher", slog.String("email", teacher.Email))

	exists, err := s.store.ExistsTeacherByEmail(ctx, teacher.Email)
	if err != nil {
		return types.Teacher{}, fmt.Errorf("check teacher email: %w", err)
	}
	if exists {
		s.log.Warn("duplicate teacher email", slog.String("email", teacher.Email))
		return types.Teacher{}, newError(ErrDuplicateEmail, "teacher with email [%s] already exists", teacher.Email)
	}

	teacher.ID = 0
	saved, err := s.store.SaveTeacher(ctx, teacher)
	if err != nil {
		return types.Teacher{}, fmt.Errorf("create teacher: %w", err)
	}

	s.log.Info("teacher created", slog.Int64("id", saved.ID))
	return saved, nil
}
