package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/honeycarbs/jobnest/internal/auth"
	"github.com/honeycarbs/jobnest/internal/domain"
)

// listMyApplications returns the caller's own applications. The email query
// parameter must match the token identity.
func (h *handler) listMyApplications(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		writeError(w, r, h.logger, auth.ErrUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if id.Email != email {
		writeError(w, r, h.logger, ErrForbidden)
		return
	}

	apps, err := h.applications.ListForApplicant(r.Context(), email)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *handler) listJobApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applications.ListForJob(r.Context(), mux.Vars(r)["job_id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *handler) submitApplication(w http.ResponseWriter, r *http.Request) {
	var app domain.JobApplication
	if err := decodeBody(r, &app); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.applications.Submit(r.Context(), app)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type statusUpdate struct {
	Status string `json:"status"`
}

func (h *handler) updateApplication(w http.ResponseWriter, r *http.Request) {
	var body statusUpdate
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.applications.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	res, err := h.applications.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
