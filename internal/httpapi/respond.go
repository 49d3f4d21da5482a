package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

const flashCookie = "fyyur_flash"

type errorResponse struct {
	Error string `json:"error"`
}

// mutationResponse is the JSON rendition of a create, edit or delete.
type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// statusFor maps an error kind to the response status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrReferentialIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// render answers with page as HTML, or with data as JSON when the caller
// asked for it.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, flash string, data any) {
	if wantsJSON(r) {
		writeJSON(w, status, data)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var body strings.Builder
	if err := s.pages.Render(&body, page, web.View{Flash: flash, Data: data}); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("page", page).Msg("render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body.String()))
}

// renderPage answers a successful read. A pending flash message is shown,
// and consumed, only when the page is rendered as HTML.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	var flash string
	if !wantsJSON(r) {
		flash = takeFlash(w, r)
	}
	s.render(w, r, http.StatusOK, page, flash, data)
}

// fail answers a read that could not be served: the 404 page for missing
// records and the 500 page for everything else.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusNotFound {
		s.NotFound(w, r)
		return
	}

	logging.WithContext(r.Context()).Error().Err(err).Str("op", op).Msg("request failed")
	if status != http.StatusInternalServerError && wantsJSON(r) {
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	s.ServerError(w, r)
}

// NotFound renders the 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	s.render(w, r, http.StatusNotFound, web.PageNotFound, "", nil)
}

// ServerError renders the 500 page.
func (s *Server) ServerError(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	s.render(w, r, http.StatusInternalServerError, web.PageServerError, "", nil)
}

// outcome answers a mutation. HTML callers get the home page carrying the
// message; JSON callers get a mutationResponse. Failures use the status for
// the error kind in both renditions.
func (s *Server) outcome(w http.ResponseWriter, r *http.Request, op string, successStatus int, out models.Outcome, err error) {
	status := successStatus
	if err != nil {
		status = statusFor(err)
		logMutationFailure(r, op, status, err)
	}

	if wantsJSON(r) {
		writeJSON(w, status, mutationResponse{Success: err == nil, Message: out.Message, ID: out.ID})
		return
	}
	if err == nil {
		status = http.StatusOK
	}
	s.render(w, r, status, web.PageHome, out.Message, nil)
}

func logMutationFailure(r *http.Request, op string, status int, err error) {
	logger := logging.WithContext(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("op", op).Int("status_code", status).Msg("mutation failed")
}

// redirectWithFlash sends the browser to location and shows message on the
// next page it renders.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, location, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})

	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", store.ErrNotFound, raw)
	}
	return id, nil
}

// parseForm reads the submitted body. A malformed body leaves the form
// empty, which the store then rejects as a validation error.
func parseForm(r *http.Request) url.Values {
	if err := r.ParseForm(); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("parse form")
	}
	if r.PostForm == nil {
		return url.Values{}
	}
	return r.PostForm
}
