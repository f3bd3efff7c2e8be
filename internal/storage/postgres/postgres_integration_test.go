//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/types"
)

type PostgresSuite struct {
	suite.Suite
	ctx   context.Context
	store *Postgres
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("school"),
		tcpostgres.WithUsername("school"),
		tcpostgres.WithPassword("school"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(s.T(), container)
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	store, err := New(s.ctx, dsn)
	s.Require().NoError(err)
	s.store = store
}

func (s *PostgresSuite) TearDownSuite() {
	if s.store != nil {
		s.NoError(s.store.Close())
	}
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.store.db.ExecContext(s.ctx, `TRUNCATE students, teachers RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *PostgresSuite) TestSaveAndFind() {
	saved, err := s.store.SaveStudent(s.ctx, types.Student{Name: "A", Email: "a@x.com", Gender: "F"})
	s.Require().NoError(err)
	s.Equal(int64(1), saved.ID)

	got, err := s.store.FindStudentByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal(saved, got)

	_, err = s.store.FindStudentByID(s.ctx, 99)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *PostgresSuite) TestUpsertByID() {
	saved, err := s.store.SaveStudent(s.ctx, types.Student{Name: "A", Email: "a@x.com", Gender: "F"})
	s.Require().NoError(err)

	saved.Email = "new@x.com"
	_, err = s.store.SaveStudent(s.ctx, saved)
	s.Require().NoError(err)

	n, err := s.store.CountStudents(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	ok, err := s.store.ExistsStudentByEmail(s.ctx, "new@x.com")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *PostgresSuite) TestGenderIgnoresCaseAndDeletes() {
	for _, g := range []string{"Male", "MALE", "female"} {
		_, err := s.store.SaveStudent(s.ctx, types.Student{Name: g, Email: g + "@x.com", Gender: g})
		s.Require().NoError(err)
	}

	males, err := s.store.FindStudentsByGender(s.ctx, "male")
	s.Require().NoError(err)
	s.Len(males, 2)

	s.Require().NoError(s.store.DeleteStudentByID(s.ctx, males[0].ID))
	s.Require().NoError(s.store.DeleteAllStudents(s.ctx))

	all, err := s.store.FindAllStudents(s.ctx)
	s.Require().NoError(err)
	s.NotNil(all)
	s.Empty(all)
}

func (s *PostgresSuite) TestTeachers() {
	t, err := s.store.SaveTeacher(s.ctx, types.Teacher{Name: "T", Email: "t@x.com", Gender: "M"})
	s.Require().NoError(err)
	s.Equal(int64(1), t.ID)

	ok, err := s.store.ExistsTeacherByEmail(s.ctx, "t@x.com")
	s.Require().NoError(err)
	s.True(ok)
}
