package user

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/pkg/binder"
	"github.com/taskhub/taskhub/pkg/jwt"
	"github.com/taskhub/taskhub/pkg/ratelimit"
	"github.com/taskhub/taskhub/svc/identity"
)

// Service exposes the account workflows over HTTP. Mount it at /api/user.
type Service struct {
	identity *identity.Service
	limiter  ratelimit.Limiter
	log      *slog.Logger
}

// Option is a functional option for Service.
type Option func(*Service)

// WithRateLimiter protects Login and Register with the given limiter.
func WithRateLimiter(limiter ratelimit.Limiter) Option {
	return func(s *Service) {
		s.limiter = limiter
	}
}

// WithLogger sets a custom logger for request error reporting.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func New(identitySvc *identity.Service, opts ...Option) *Service {
	s := &Service{
		identity: identitySvc,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle builds the module router. Registration, login, and the two token
// confirmation endpoints are public; everything else requires a Bearer
// session token.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	errHandler := handler.BindErrorHandler[handler.Context](s.log,
		binder.ErrFailedToParseJSON,
		binder.ErrFailedToParseQuery,
		binder.ErrFailedToParsePath,
		binder.ErrUnsupportedMediaType,
		binder.ErrMissingContentType,
	)

	r.Group(func(pub chi.Router) {
		if s.limiter != nil {
			pub.Use(ratelimit.MiddlewareWithOptions(s.limiter,
				ratelimit.WithKeyFunc(ratelimit.ByEndpoint(ratelimit.ByClientIP)),
			))
		}

		pub.Post("/Register", handler.Wrap(s.register,
			handler.WithBinders[handler.Context, registerRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, registerRequest](errHandler),
		))
		pub.Post("/Login", handler.Wrap(s.login,
			handler.WithBinders[handler.Context, loginRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, loginRequest](errHandler),
		))
	})

	r.Post("/ConfirmEmail", handler.Wrap(s.confirmEmail,
		handler.WithBinders[handler.Context, confirmEmailRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, confirmEmailRequest](errHandler),
	))
	r.Post("/ConfirmNewEmail", handler.Wrap(s.confirmNewEmail,
		handler.WithBinders[handler.Context, confirmNewEmailRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, confirmNewEmailRequest](errHandler),
	))

	r.Group(func(auth chi.Router) {
		auth.Use(jwt.Middleware(s.identity.TokenVerifier()))

		auth.Get("/", handler.Wrap(s.listUsers,
			handler.WithErrorHandler[handler.Context, emptyRequest](errHandler),
		))
		auth.Get("/{id}", handler.Wrap(s.getUser,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
		))
		auth.Get("/{id}/roles", handler.Wrap(s.userRoles,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
		))
		auth.Put("/{id}", handler.Wrap(s.updateProfile,
			handler.WithBinders[handler.Context, updateProfileRequest](
				binder.Path(chi.URLParam),
				binder.JSON(),
			),
			handler.WithErrorHandler[handler.Context, updateProfileRequest](errHandler),
		))
		auth.Delete("/{id}", handler.Wrap(s.deleteUser,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
		))

		auth.Post("/{id}/Lock", handler.Wrap(s.lockAccount,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
		))
		auth.Post("/UnlockAccount", handler.Wrap(s.unlockAccount,
			handler.WithBinders[handler.Context, unlockAccountRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, unlockAccountRequest](errHandler),
		))
		auth.Post("/logout", handler.Wrap(s.logout,
			handler.WithErrorHandler[handler.Context, emptyRequest](errHandler),
		))

		auth.Post("/{id}/Enable2FA", handler.Wrap(s.enableTwoFactor,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
		))
		auth.Post("/{id}/Disable2FA", handler.Wrap(s.disableTwoFactor,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errHandler),
		))

		auth.Post("/{id}/ChangePassWord", handler.Wrap(s.changePassword,
			handler.WithBinders[handler.Context, changePasswordRequest](
				binder.Path(chi.URLParam),
				binder.JSON(),
			),
			handler.WithErrorHandler[handler.Context, changePasswordRequest](errHandler),
		))
		auth.Post("/{id}/ChangeEmail", handler.Wrap(s.changeEmail,
			handler.WithBinders[handler.Context, changeEmailRequest](
				binder.Path(chi.URLParam),
				binder.JSON(),
			),
			handler.WithErrorHandler[handler.Context, changeEmailRequest](errHandler),
		))
	})

	return r
}
