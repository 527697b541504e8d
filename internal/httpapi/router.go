// Package httpapi serves the JobNest REST endpoints.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/honeycarbs/jobnest/internal/auth"
	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/internal/metrics"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// Applications is the application workflow used by the handlers
type Applications interface {
	ListForApplicant(ctx context.Context, email string) ([]domain.JobApplication, error)
	ListForJob(ctx context.Context, jobID string) ([]domain.JobApplication, error)
	Submit(ctx context.Context, app domain.JobApplication) (domain.InsertResult, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

// Tokens issues and verifies session tokens
type Tokens interface {
	auth.Verifier
	Issue(payload map[string]any) (string, error)
	TTL() time.Duration
}

// Deps are the collaborators of the router
type Deps struct {
	Jobs         job.Service
	Applications Applications
	Tokens       Tokens
	Logger       *logging.Logger

	// SecureCookies switches the token cookie to Secure with SameSite=None
	SecureCookies bool
	CORSOrigins   []string

	// MCP is mounted on /mcp/stream when set
	MCP http.Handler
}

type handler struct {
	jobs          job.Service
	applications  Applications
	tokens        Tokens
	logger        *logging.Logger
	secureCookies bool
}

// NewRouter builds the HTTP handler tree
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	h := &handler{
		jobs:          deps.Jobs,
		applications:  deps.Applications,
		tokens:        deps.Tokens,
		logger:        logger,
		secureCookies: deps.SecureCookies,
	}
	authn := auth.NewAuthenticator(deps.Tokens, logger)

	r := mux.NewRouter()
	r.Use(requestLogger(logger), metrics.Middleware)

	r.HandleFunc("/", h.root).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/jwt", h.issueToken).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	r.HandleFunc("/jobs", h.listJobs).Methods(http.MethodGet)
	r.HandleFunc("/jobs", h.createJob).Methods(http.MethodPost)
	r.HandleFunc("/jobs/{id}", h.getJob).Methods(http.MethodGet)
	r.HandleFunc("/latest-job", h.latestJobs).Methods(http.MethodGet)

	r.Handle("/job-applications", authn.Middleware(http.HandlerFunc(h.listMyApplications))).Methods(http.MethodGet)
	r.HandleFunc("/job-applications", h.submitApplication).Methods(http.MethodPost)
	r.HandleFunc("/job-applications/jobs/{job_id}", h.listJobApplications).Methods(http.MethodGet)
	r.HandleFunc("/job-applications/{id}", h.updateApplication).Methods(http.MethodPatch)
	r.HandleFunc("/job-applications/{id}", h.deleteApplication).Methods(http.MethodDelete)

	if deps.MCP != nil {
		r.PathPrefix("/mcp/stream").Handler(deps.MCP)
	}

	return newCORS(deps.CORSOrigins).Handler(r)
}

func (h *handler) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("JobNest server is running..."))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
