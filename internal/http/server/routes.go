// Package server assembles the route table and the middleware chain.
package server

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/school-api/internal/http/handlers/student"
	"github.com/aanand-mishra/school-api/internal/http/handlers/teacher"
	"github.com/aanand-mishra/school-api/internal/http/middleware"
	"github.com/aanand-mishra/school-api/internal/metrics"
)

// Deps are the collaborators of the HTTP layer. Only the two services are
// required.
type Deps struct {
	Students student.Service
	Teachers teacher.Service
	Logger   *slog.Logger

	// RateLimit wraps every student route when set.
	RateLimit func(http.Handler) http.Handler

	// Metrics feeds request metrics. With a non-empty MetricsPath the
	// registry is also served there.
	Metrics     *metrics.Metrics
	MetricsPath string
}

// NewHandler returns the root handler.
//
// Route table:
//
//	POST   /api/students                     create
//	GET    /api/students                     list, or ?gender= ?emailDomain= ?top= ?existsName=
//	GET    /api/students/{id}                get one
//	PUT    /api/students/{id}                replace name, email, gender
//	DELETE /api/students/{id}                delete one
//	DELETE /api/students                     delete all
//	DELETE /api/students/archive             log every record, then delete all
//	PATCH  /api/students/{id}/email          ?newEmail=
//	POST   /api/teachers                     create
func NewHandler(d Deps) http.Handler {
	limit := d.RateLimit
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}

	router := http.NewServeMux()

	students := map[string]http.HandlerFunc{
		"POST /api/students":             student.New(d.Students),
		"GET /api/students":              student.GetList(d.Students),
		"GET /api/students/{id}":         student.GetByID(d.Students),
		"PUT /api/students/{id}":         student.Update(d.Students),
		"DELETE /api/students/{id}":      student.Delete(d.Students),
		"DELETE /api/students":           student.DeleteAll(d.Students),
		"DELETE /api/students/archive":   student.Archive(d.Students),
		"PATCH /api/students/{id}/email": student.UpdateEmail(d.Students),
	}
	for pattern, h := range students {
		router.Handle(pattern, limit(h))
	}

	router.HandleFunc("POST /api/teachers", teacher.New(d.Teachers))

	if d.Metrics != nil && d.MetricsPath != "" {
		router.Handle("GET "+d.MetricsPath, d.Metrics.Handler())
	}

	return middleware.Chain(router,
		middleware.RequestID,
		middleware.Logging(d.Logger, d.Metrics),
	)
}
