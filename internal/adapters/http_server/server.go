package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

type options struct {
	timeout time.Duration
	logger  zerolog.Logger
}

type Option func(*options)

// WithTimeout caps handler time. d <= 0 disables the cap.
func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

// WithLogger sets the access-log destination. Defaults to the global logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

func New(opts ...Option) *Server {
	o := options{timeout: 15 * time.Second, logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}

	m := chi.NewRouter()
	// middlewares must be registered before any route
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	if o.timeout > 0 {
		m.Use(Timeout(o.timeout))
	}
	m.Use(Metrics)
	m.Use(Logger(o.logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches an extra handler, such as /metrics, to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
