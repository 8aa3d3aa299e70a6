package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/web/static"
)

// ActivityService handles directory operations.
type ActivityService interface {
	List(ctx context.Context) (activity.Directory, error)
	Signup(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// Server wires HTTP handlers.
type Server struct {
	svc    ActivityService
	logger *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(svc ActivityService, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))

	srv := &Server{svc: svc, logger: logger}

	r.Get("/", srv.handleRoot)
	r.Get("/activities", srv.handleListActivities)
	r.Post("/activities/{activityName}/signup", srv.handleSignup)
	r.Post("/activities/{activityName}/unregister", srv.handleUnregister)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	dir, err := s.svc.List(r.Context())
	if err != nil {
		s.logger.Error("listing activities failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dir)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	if err := s.svc.Signup(r.Context(), name, email); err != nil {
		metrics.SignupsTotal.WithLabelValues(outcome(err)).Inc()
		writeError(w, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	writeMessage(w, "Signed up "+email+" for "+name)
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	if err := s.svc.Unregister(r.Context(), name, email); err != nil {
		metrics.UnregistersTotal.WithLabelValues(outcome(err)).Inc()
		writeError(w, err)
		return
	}

	metrics.UnregistersTotal.WithLabelValues("success").Inc()
	writeMessage(w, "Unregistered "+email+" from "+name)
}

// activityName returns the decoded path segment; names like "Drama Club"
// arrive percent-encoded.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "activityName")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
