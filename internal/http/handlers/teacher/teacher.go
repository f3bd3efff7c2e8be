// Package teacher contains the HTTP handlers for the Teacher resource.
// Only creation exists so far.
package teacher

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/school-api/internal/types"
	"github.com/aanand-mishra/school-api/internal/utils/request"
	"github.com/aanand-mishra/school-api/internal/utils/response"
	"github.com/aanand-mishra/school-api/internal/validation"
)

// Service is satisfied by *service.TeacherService.
type Service interface {
	Create(ctx context.Context, t types.Teacher) (types.Teacher, error)
}

// New handles POST /api/teachers.
// Errors: 400 empty/malformed body or validation, 409 duplicate email.
func New(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a teacher")

		var teacher types.Teacher
		if err := request.DecodeJSON(r, &teacher); err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		if errs := validation.Struct(teacher); errs != nil {
			response.ValidationFailed(w, errs)
			return
		}

		created, err := svc.Create(r.Context(), teacher)
		if err != nil {
			response.FromError(w, nil, err)
			return
		}

		response.OK(w, http.StatusCreated, "teacher added successfully", created)
	}
}
