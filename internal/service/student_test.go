package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/storage/mocks"
	"github.com/aanand-mishra/school-api/internal/types"
)

type StudentServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mocks.MockStudentStore
	service *StudentService
	ctx     context.Context
}

func TestStudentServiceSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceSuite))
}

func (s *StudentServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStudentStore(s.ctrl)
	s.service = NewStudentService(s.store, discardLogger())
	s.ctx = context.Background()
}

func (s *StudentServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func roster() []types.Student {
	return []types.Student{
		{ID: 1, Name: "charlie", Email: "charlie@school.edu", Gender: "M"},
		{ID: 2, Name: "Alice", Email: "alice@SCHOOL.edu", Gender: "F"},
		{ID: 3, Name: "bob", Email: "bob@gmail.com", Gender: "M"},
		{ID: 4, Name: "alice", Email: "alice2@gmail.com", Gender: "F"},
	}
}

func (s *StudentServiceSuite) TestCreate() {
	s.Run("saves when email is free", func() {
		in := types.Student{Name: "Alice", Email: "alice@x.com", Gender: "F"}
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "alice@x.com").Return(false, nil)
		s.store.EXPECT().SaveStudent(gomock.Any(), in).Return(types.Student{ID: 1, Name: "Alice", Email: "alice@x.com", Gender: "F"}, nil)

		got, err := s.service.Create(s.ctx, in)
		s.Require().NoError(err)
		s.Equal(int64(1), got.ID)
		s.Equal("Alice", got.Name)
	})

	s.Run("client supplied id is discarded", func() {
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "z@x.com").Return(false, nil)
		s.store.EXPECT().
			SaveStudent(gomock.Any(), types.Student{Name: "Z", Email: "z@x.com", Gender: "F"}).
			Return(types.Student{ID: 9, Name: "Z", Email: "z@x.com", Gender: "F"}, nil)

		_, err := s.service.Create(s.ctx, types.Student{ID: 42, Name: "Z", Email: "z@x.com", Gender: "F"})
		s.Require().NoError(err)
	})

	s.Run("duplicate email performs no write", func() {
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "alice@x.com").Return(true, nil)
		s.store.EXPECT().SaveStudent(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.Create(s.ctx, types.Student{Name: "Alice", Email: "alice@x.com", Gender: "F"})
		s.ErrorIs(err, ErrDuplicateEmail)
		s.Equal("student with email [alice@x.com] already exists", err.Error())
	})

	s.Run("store failure is wrapped, not classified", func() {
		boom := errors.New("disk full")
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), gomock.Any()).Return(false, boom)

		_, err := s.service.Create(s.ctx, types.Student{Email: "e@x.com"})
		s.ErrorIs(err, boom)
		s.NotErrorIs(err, ErrDuplicateEmail)
	})
}

func (s *StudentServiceSuite) TestGetByID() {
	s.Run("found", func() {
		want := types.Student{ID: 7, Name: "A", Email: "a@x.com", Gender: "F"}
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(7)).Return(want, nil)

		got, err := s.service.GetByID(s.ctx, 7)
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("missing id is ErrNotFound", func() {
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(8)).Return(types.Student{}, storage.ErrNotFound)

		_, err := s.service.GetByID(s.ctx, 8)
		s.ErrorIs(err, ErrNotFound)
		s.Equal("student not found with id: 8", err.Error())
	})
}

func (s *StudentServiceSuite) TestGetAll() {
	s.Run("empty store is ErrNoData", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return([]types.Student{}, nil)

		_, err := s.service.GetAll(s.ctx)
		s.ErrorIs(err, ErrNoData)
	})

	s.Run("returns every record", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil)

		got, err := s.service.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Len(got, 4)
	})
}

func (s *StudentServiceSuite) TestUpdate() {
	s.Run("overwrites every field", func() {
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(1)).
			Return(types.Student{ID: 1, Name: "Old", Email: "old@x.com", Gender: "M"}, nil)
		want := types.Student{ID: 1, Name: "New", Email: "new@x.com", Gender: "F"}
		s.store.EXPECT().SaveStudent(gomock.Any(), want).Return(want, nil)

		got, err := s.service.Update(s.ctx, 1, types.Student{ID: 99, Name: "New", Email: "new@x.com", Gender: "F"})
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("missing id performs no write", func() {
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(2)).Return(types.Student{}, storage.ErrNotFound)
		s.store.EXPECT().SaveStudent(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.Update(s.ctx, 2, types.Student{Name: "X"})
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *StudentServiceSuite) TestDeleteByID() {
	s.Run("returns the pre-delete snapshot", func() {
		snap := types.Student{ID: 3, Name: "C", Email: "c@x.com", Gender: "F"}
		gomock.InOrder(
			s.store.EXPECT().FindStudentByID(gomock.Any(), int64(3)).Return(snap, nil),
			s.store.EXPECT().DeleteStudentByID(gomock.Any(), int64(3)).Return(nil),
		)

		got, err := s.service.DeleteByID(s.ctx, 3)
		s.Require().NoError(err)
		s.Equal(snap, got)
	})

	s.Run("missing id", func() {
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(4)).Return(types.Student{}, storage.ErrNotFound)
		s.store.EXPECT().DeleteStudentByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.DeleteByID(s.ctx, 4)
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *StudentServiceSuite) TestDeleteAll() {
	s.Run("empty store is ErrNotFound", func() {
		s.store.EXPECT().CountStudents(gomock.Any()).Return(int64(0), nil)
		s.store.EXPECT().DeleteAllStudents(gomock.Any()).Times(0)

		err := s.service.DeleteAll(s.ctx)
		s.ErrorIs(err, ErrNotFound)
		s.Equal("no students found to delete", err.Error())
	})

	s.Run("deletes when records exist", func() {
		s.store.EXPECT().CountStudents(gomock.Any()).Return(int64(2), nil)
		s.store.EXPECT().DeleteAllStudents(gomock.Any()).Return(nil)

		s.NoError(s.service.DeleteAll(s.ctx))
	})
}

func (s *StudentServiceSuite) TestGetByGender() {
	s.Run("passes the gender through to the store", func() {
		s.store.EXPECT().FindStudentsByGender(gomock.Any(), "f").Return(roster()[1:2], nil)

		got, err := s.service.GetByGender(s.ctx, "f")
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("no match is ErrNoData", func() {
		s.store.EXPECT().FindStudentsByGender(gomock.Any(), "X").Return([]types.Student{}, nil)

		_, err := s.service.GetByGender(s.ctx, "X")
		s.ErrorIs(err, ErrNoData)
	})
}

func (s *StudentServiceSuite) TestGetByEmailDomain() {
	s.Run("suffix match ignores case", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil)

		got, err := s.service.GetByEmailDomain(s.ctx, "School.EDU")
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(int64(1), got[0].ID)
		s.Equal(int64(2), got[1].ID)
	})

	s.Run("domain must follow the @", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil)

		_, err := s.service.GetByEmailDomain(s.ctx, "mail.com")
		s.ErrorIs(err, ErrNoData)
	})
}

func (s *StudentServiceSuite) TestGetTopN() {
	s.Run("sorted by name ignoring case, stable on ties", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil)

		got, err := s.service.GetTopN(s.ctx, 3)
		s.Require().NoError(err)
		s.Require().Len(got, 3)
		s.Equal([]int64{2, 4, 3}, ids(got))
	})

	s.Run("n larger than the store returns everything", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil)

		got, err := s.service.GetTopN(s.ctx, 100)
		s.Require().NoError(err)
		s.Equal([]int64{2, 4, 3, 1}, ids(got))
	})

	s.Run("zero and negative n are ErrNoData", func() {
		for _, n := range []int{0, -3} {
			s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil)

			_, err := s.service.GetTopN(s.ctx, n)
			s.ErrorIs(err, ErrNoData)
		}
	})

	s.Run("empty store is ErrNoData", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return(nil, nil)

		_, err := s.service.GetTopN(s.ctx, 2)
		s.ErrorIs(err, ErrNoData)
	})
}

func (s *StudentServiceSuite) TestExistsByName() {
	s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil).Times(2)

	ok, err := s.service.ExistsByName(s.ctx, "CHARLIE")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.ExistsByName(s.ctx, "dave")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StudentServiceSuite) TestExistsByName_EmptyStoreNeverFails() {
	s.store.EXPECT().FindAllStudents(gomock.Any()).Return([]types.Student{}, nil)

	ok, err := s.service.ExistsByName(s.ctx, "anyone")
	s.NoError(err)
	s.False(ok)
}

func (s *StudentServiceSuite) TestArchiveAndDeleteAll() {
	s.Run("reads then deletes", func() {
		gomock.InOrder(
			s.store.EXPECT().FindAllStudents(gomock.Any()).Return(roster(), nil),
			s.store.EXPECT().CountStudents(gomock.Any()).Return(int64(4), nil),
			s.store.EXPECT().DeleteAllStudents(gomock.Any()).Return(nil),
		)

		s.NoError(s.service.ArchiveAndDeleteAll(s.ctx))
	})

	s.Run("empty store inherits the delete-all failure", func() {
		s.store.EXPECT().FindAllStudents(gomock.Any()).Return([]types.Student{}, nil)
		s.store.EXPECT().CountStudents(gomock.Any()).Return(int64(0), nil)

		err := s.service.ArchiveAndDeleteAll(s.ctx)
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *StudentServiceSuite) TestSafeUpdateEmail() {
	s.Run("updates the email only", func() {
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "new@x.com").Return(false, nil)
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(5)).
			Return(types.Student{ID: 5, Name: "E", Email: "old@x.com", Gender: "F"}, nil)
		want := types.Student{ID: 5, Name: "E", Email: "new@x.com", Gender: "F"}
		s.store.EXPECT().SaveStudent(gomock.Any(), want).Return(want, nil)

		got, err := s.service.SafeUpdateEmail(s.ctx, 5, "new@x.com")
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("duplicate is checked before existence", func() {
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "taken@x.com").Return(true, nil)
		s.store.EXPECT().FindStudentByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.SafeUpdateEmail(s.ctx, 404, "taken@x.com")
		s.ErrorIs(err, ErrDuplicateEmail)
	})

	s.Run("resubmitting the current email is a duplicate", func() {
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "old@x.com").Return(true, nil)

		_, err := s.service.SafeUpdateEmail(s.ctx, 5, "old@x.com")
		s.ErrorIs(err, ErrDuplicateEmail)
	})

	s.Run("missing id", func() {
		s.store.EXPECT().ExistsStudentByEmail(gomock.Any(), "free@x.com").Return(false, nil)
		s.store.EXPECT().FindStudentByID(gomock.Any(), int64(6)).Return(types.Student{}, storage.ErrNotFound)
		s.store.EXPECT().SaveStudent(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.SafeUpdateEmail(s.ctx, 6, "free@x.com")
		s.ErrorIs(err, ErrNotFound)
	})
}

func ids(students []types.Student) []int64 {
	out := make([]int64, 0, len(students))
	for _, st := range students {
		out = append(out, st.ID)
	}
	return out
}
