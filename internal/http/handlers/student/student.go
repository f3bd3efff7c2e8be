// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN USED HERE: CLOSURE / FACTORY
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a service.
// Each factory below accepts the dependency once, at route registration,
// and returns the function the router calls on every request:
//
//	router.HandleFunc("POST /api/students", student.New(svc))
//
// Handlers only parse, validate and translate. Business rules (email
// uniqueness, "no data" rejections) live in the service.
package student

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/school-api/internal/types"
	"github.com/aanand-mishra/school-api/internal/utils/request"
	"github.com/aanand-mishra/school-api/internal/utils/response"
	"github.com/aanand-mishra/school-api/internal/validation"
)

// Service is what the handlers need from the student service.
// *service.StudentService satisfies it.
type Service interface {
	Create(ctx context.Context, s types.Student) (types.Student, error)
	GetByID(ctx context.Context, id int64) (types.Student, error)
	GetAll(ctx context.Context) ([]types.Student, error)
	Update(ctx context.Context, id int64, patch types.Student) (types.Student, error)
	DeleteByID(ctx context.Context, id int64) (types.Student, error)
	DeleteAll(ctx context.Context) error
	GetByGender(ctx context.Context, gender string) ([]types.Student, error)
	GetByEmailDomain(ctx context.Context, domain string) ([]types.Student, error)
	GetTopN(ctx context.Context, n int) ([]types.Student, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ArchiveAndDeleteAll(ctx context.Context) error
	SafeUpdateEmail(ctx context.Context, id int64, newEmail string) (types.Student, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
//
// Request body (JSON), id is ignored:
//
//	{ "name": "Rakesh", "email": "rakesh@test.com", "gender": "M" }
//
// Success (201): envelope with the stored record, id included.
// Errors: 400 empty/malformed body or validation, 409 duplicate email.
// ─────────────────────────────────────────────────────────────────────────────
func New(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var student types.Student
		if err := request.DecodeJSON(r, &student); err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		if errs := validation.Struct(student); errs != nil {
			response.ValidationFailed(w, errs)
			return
		}

		created, err := svc.Create(r.Context(), student)
		if err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusCreated, "student added successfully", created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/students/{id}
//
// Errors: 400 non-integer id, 404 unknown id.
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := svc.GetByID(r.Context(), id)
		if err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusOK, fmt.Sprintf("student is present with given id: %d", id), student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/students and its query variants.
//
// The first parameter present wins, in this order:
//
//	?gender=F            students with that gender (case-insensitive)
//	?emailDomain=uni.org students whose email ends with "@uni.org"
//	?top=3               first 3 students ordered by name
//	?existsName=alice    true/false, never 404
//	(none)               every student
//
// A list query with no match answers 404.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ctx := r.Context()

		switch {
		case q.Has("gender"):
			gender := q.Get("gender")
			slog.Info("getting students by gender", slog.String("gender", gender))
			writeList(w, "students found with gender: "+gender)(svc.GetByGender(ctx, gender))

		case q.Has("emailDomain"):
			domain := q.Get("emailDomain")
			slog.Info("getting students by email domain", slog.String("domain", domain))
			writeList(w, "students found with email domain: "+domain)(svc.GetByEmailDomain(ctx, domain))

		case q.Has("top"):
			n, err := strconv.Atoi(q.Get("top"))
			if err != nil {
				response.Fail(w, http.StatusBadRequest, "invalid top: must be an integer")
				return
			}
			slog.Info("getting top students by name", slog.Int("top", n))
			writeList(w, fmt.Sprintf("top %d students by name", n))(svc.GetTopN(ctx, n))

		case q.Has("existsName"):
			name := q.Get("existsName")
			slog.Info("checking student name", slog.String("name", name))
			exists, err := svc.ExistsByName(ctx, name)
			if err != nil {
				response.FromError(w, nil, err)
				return
			}
			response.OK(w, http.StatusOK, "student name lookup completed", exists)

		default:
			slog.Info("getting all students")
			writeList(w, "all students fetched successfully")(svc.GetAll(ctx))
		}
	}
}

// writeList adapts a (list, error) service result into a response.
func writeList(w http.ResponseWriter, message string) func([]types.Student, error) {
	return func(students []types.Student, err error) {
		if err != nil {
			response.FromError(w, nil, err)
			return
		}
		response.OK(w, http.StatusOK, message, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/students/{id}
//
// Replaces name, email and gender. The body is validated with the same
// rules as creation; its id, if any, is ignored.
// Errors: 400 bad id/body/validation, 404 unknown id.
// ─────────────────────────────────────────────────────────────────────────────
func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Info("updating a student", slog.Int64("id", id))

		var patch types.Student
		if err := request.DecodeJSON(r, &patch); err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		if errs := validation.Struct(patch); errs != nil {
			response.ValidationFailed(w, errs)
			return
		}

		updated, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusOK, "student updated successfully", updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/students/{id}
//
// Success (200): envelope with the record as it was before deletion.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		deleted, err := svc.DeleteByID(r.Context(), id)
		if err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusOK, "student deleted successfully", deleted)
	}
}

// DeleteAll handles DELETE /api/students. 404 when there is nothing to delete.
func DeleteAll(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("deleting all students")

		if err := svc.DeleteAll(r.Context()); err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusOK, "all students deleted successfully", nil)
	}
}

// Archive handles DELETE /api/students/archive: every record is logged,
// then all are deleted.
func Archive(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("archiving all students")

		if err := svc.ArchiveAndDeleteAll(r.Context()); err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusOK, "all students archived and deleted successfully", nil)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateEmail handles PATCH /api/students/{id}/email?newEmail=...
//
// newEmail must be present and look like an email address.
// Errors: 400 bad id or email, 404 unknown id, 409 email already taken.
// ─────────────────────────────────────────────────────────────────────────────
func UpdateEmail(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		newEmail := r.URL.Query().Get("newEmail")
		if errs := validation.Var("newEmail", newEmail, "required,email"); errs != nil {
			response.ValidationFailed(w, errs)
			return
		}
		slog.Info("updating student email", slog.Int64("id", id), slog.String("email", newEmail))

		updated, err := svc.SafeUpdateEmail(r.Context(), id, newEmail)
		if err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusOK, "student email updated successfully", updated)
	}
}
