package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/usecase"
	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// Server serves the audit API and the site pages
type Server struct {
	router         *chi.Mux
	uc             *usecase.UseCases
	metricsHandler http.Handler
	pages          *pageRenderer
}

// Options configures a Server
type Options func(*Server)

// WithMetricsHandler exposes h at /metrics
func WithMetricsHandler(h http.Handler) Options {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

// New builds the router and parses the page templates
func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("use cases are required")
	}

	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	pages, err := newPageRenderer(uc.QuestionBank())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load page templates")
	}
	s.pages = pages

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthzHandler)
	if s.metricsHandler != nil {
		r.Handle("/metrics", s.metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)

		r.Route("/audit", func(r chi.Router) {
			r.Get("/questions", questionsHandler(uc.Audit))
			r.Post("/sessions", startSessionHandler(uc.Audit))
			r.Route("/sessions/{sessionID}", func(r chi.Router) {
				r.Get("/", getSessionHandler(uc.Audit))
				r.Delete("/", endSessionHandler(uc.Audit))
				r.Put("/answers/{questionID}", answerHandler(uc.Audit))
				r.Post("/submit", submitHandler(uc.Audit))
				r.Post("/reset", resetHandler(uc.Audit))
				r.Get("/notices", noticesHandler(uc.Audit))
			})
		})

		r.Post("/contact", contactHandler(uc.Contact))
	})

	for _, p := range sitePages {
		r.Get(p.Path, s.pages.handler(p))
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
