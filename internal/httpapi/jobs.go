package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/domain/job"
)

func (h *handler) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs, err := h.jobs.List(r.Context(), job.QueryParams{
		Email:    q.Get("email"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Min:      q.Get("min"),
		Max:      q.Get("max"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *handler) getJob(w http.ResponseWriter, r *http.Request) {
	j, err := h.jobs.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (h *handler) latestJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.Latest(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *handler) createJob(w http.ResponseWriter, r *http.Request) {
	var j domain.Job
	if err := decodeBody(r, &j); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.jobs.Create(r.Context(), j)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
