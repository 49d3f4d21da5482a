package httpapi

import (
	"net/http"

	"fyyur/internal/app/shows"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/web"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := s.shows.List(r.Context())
	if err != nil {
		s.fail(w, r, "list shows", err)
		return
	}
	s.renderPage(w, r, web.PageShows, listings)
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	opts, err := s.shows.FormOptions(r.Context())
	if err != nil {
		s.fail(w, r, "show form options", err)
		return
	}
	s.render(w, r, http.StatusOK, web.PageNewShow, "", opts)
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	show, err := forms.ParseShow(parseForm(r), s.loc)
	if err != nil {
		s.outcome(w, r, "create show", http.StatusCreated, models.Outcome{Message: shows.CreateFailed}, err)
		return
	}

	out, err := s.shows.Create(r.Context(), show)
	s.outcome(w, r, "create show", http.StatusCreated, out, err)
}
