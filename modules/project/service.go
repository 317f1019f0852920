package project

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/pkg/binder"
	"github.com/taskhub/taskhub/pkg/jwt"
	"github.com/taskhub/taskhub/svc/tracker"
)

// Service exposes projects, tasks, and comments over HTTP. Mount it at
// /api/project. Every route requires a Bearer session token.
type Service struct {
	tracker  *tracker.Service
	verifier *jwt.Service
	log      *slog.Logger
}

// Option is a functional option for Service.
type Option func(*Service)

// WithLogger sets a custom logger for request error reporting.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func New(trackerSvc *tracker.Service, verifier *jwt.Service, opts ...Option) *Service {
	s := &Service{
		tracker:  trackerSvc,
		verifier: verifier,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(jwt.Middleware(s.verifier))

	errHandler := handler.BindErrorHandler[handler.Context](s.log,
		binder.ErrFailedToParseJSON,
		binder.ErrFailedToParseQuery,
		binder.ErrFailedToParsePath,
		binder.ErrUnsupportedMediaType,
		binder.ErrMissingContentType,
	)

	r.Post("/", handler.Wrap(s.createProject,
		handler.WithBinders[handler.Context, createProjectRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, createProjectRequest](errHandler),
	))
	r.Get("/", handler.Wrap(s.listProjects,
		handler.WithErrorHandler[handler.Context, emptyRequest](errHandler),
	))
	r.Get("/{id}", handler.Wrap(s.getProject,
		handler.WithBinders[handler.Context, projectIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, projectIDRequest](errHandler),
	))
	r.Put("/{id}", handler.Wrap(s.updateProject,
		handler.WithBinders[handler.Context, updateProjectRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, updateProjectRequest](errHandler),
	))
	r.Delete("/{id}", handler.Wrap(s.deleteProject,
		handler.WithBinders[handler.Context, projectIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, projectIDRequest](errHandler),
	))

	r.Get("/{id}/members", handler.Wrap(s.listMembers,
		handler.WithBinders[handler.Context, projectIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, projectIDRequest](errHandler),
	))
	r.Post("/{id}/members", handler.Wrap(s.addMember,
		handler.WithBinders[handler.Context, memberRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, memberRequest](errHandler),
	))
	r.Delete("/{id}/members/{userId}", handler.Wrap(s.removeMember,
		handler.WithBinders[handler.Context, removeMemberRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, removeMemberRequest](errHandler),
	))

	r.Get("/manager/{userId}", handler.Wrap(s.listManagedProjects,
		handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
	))
	r.Get("/tasks/assignee/{userId}", handler.Wrap(s.listAssignedTasks,
		handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
	))
	r.Get("/comments/author/{userId}", handler.Wrap(s.listAuthoredComments,
		handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
	))

	r.Get("/{id}/tasks", handler.Wrap(s.listTasks,
		handler.WithBinders[handler.Context, projectIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, projectIDRequest](errHandler),
	))
	r.Post("/{id}/tasks", handler.Wrap(s.createTask,
		handler.WithBinders[handler.Context, createTaskRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, createTaskRequest](errHandler),
	))
	r.Get("/tasks/{taskId}", handler.Wrap(s.getTask,
		handler.WithBinders[handler.Context, taskIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, taskIDRequest](errHandler),
	))
	r.Put("/tasks/{taskId}", handler.Wrap(s.updateTask,
		handler.WithBinders[handler.Context, updateTaskRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, updateTaskRequest](errHandler),
	))
	r.Delete("/tasks/{taskId}", handler.Wrap(s.deleteTask,
		handler.WithBinders[handler.Context, taskIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, taskIDRequest](errHandler),
	))

	r.Get("/tasks/{taskId}/comments", handler.Wrap(s.listComments,
		handler.WithBinders[handler.Context, taskIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, taskIDRequest](errHandler),
	))
	r.Post("/tasks/{taskId}/comments", handler.Wrap(s.createComment,
		handler.WithBinders[handler.Context, createCommentRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, createCommentRequest](errHandler),
	))
	r.Put("/comments/{commentId}", handler.Wrap(s.updateComment,
		handler.WithBinders[handler.Context, updateCommentRequest](
			binder.Path(chi.URLParam),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, updateCommentRequest](errHandler),
	))
	r.Delete("/comments/{commentId}", handler.Wrap(s.deleteComment,
		handler.WithBinders[handler.Context, commentIDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, commentIDRequest](errHandler),
	))

	return r
}
