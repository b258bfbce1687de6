package httpadapter

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "eonpeers/internal/api"
	"eonpeers/internal/domain"
	"eonpeers/internal/ports"
	"eonpeers/internal/workers/gossiprunner"
)

// maxBody bounds every request body.
const maxBody = 4 << 20

var errUnauthorized = errors.New("admin token required")

// Services are the core operations the HTTP surface exposes.
type Services struct {
	Companies   ports.Companies
	Locations   ports.Locations
	Ledger      ports.Ledger
	Validations ports.Validations
	Gossip      ports.Gossip
}

// Server implements the generated StrictServerInterface.
type Server struct {
	Services
	jobs       ports.JobRepository
	processor  gossiprunner.Processor
	adminToken string
	log        logrus.FieldLogger
}

var _ api.StrictServerInterface = (*Server)(nil)

// New builds the server. processor may be nil, in which case ?wait=true
// requests only queue their work.
func New(svc Services, jobs ports.JobRepository, processor gossiprunner.Processor, adminToken string, log logrus.FieldLogger) *Server {
	return &Server{Services: svc, jobs: jobs, processor: processor, adminToken: adminToken, log: log}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBody))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.admin},
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

// admin guards operations declaring the adminToken scheme. It runs before
// the body is decoded.
func (s *Server) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, guarded := r.Context().Value(api.AdminTokenScopes).([]string); guarded && s.adminToken != "" {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.adminToken)) != 1 {
				s.responseError(w, r, errUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
		}).Debug("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusOf is the HTTP status for a core error kind.
func statusOf(err error) int {
	if errors.Is(err, errUnauthorized) {
		return http.StatusUnauthorized
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindValidation, domain.KindIntegrity, domain.KindAttestation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requestError answers a call whose parameters or body could not be bound.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	writeJSON(w, status, api.Error{Status: "error", Message: err.Error()})
}

// responseError answers a call the core rejected. Internal errors are logged
// and not detailed to the caller.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("request_id", middleware.GetReqID(r.Context())).Error("request failed")
		msg = "internal error"
	}
	writeJSON(w, status, api.Error{Status: "error", Message: msg})
}

func created(id, msg string) api.Created {
	return api.Created{Status: "success", Message: msg, PublicID: id}
}
