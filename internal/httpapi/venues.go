package httpapi

import (
	"net/http"
	"strconv"

	"fyyur/internal/app/venues"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/web"
)

type venueSearchView struct {
	SearchTerm string `json:"search_term"`
	venues.SearchResult
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByArea(r.Context(), s.now())
	if err != nil {
		s.fail(w, r, "list venues", err)
		return
	}
	s.renderPage(w, r, web.PageVenues, areas)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	result, err := s.venues.Search(r.Context(), term, s.now())
	if err != nil {
		s.fail(w, r, "search venues", err)
		return
	}
	s.render(w, r, http.StatusOK, web.PageSearchVenues, "", venueSearchView{SearchTerm: term, SearchResult: result})
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	detail, err := s.venues.Get(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, r, "get venue", err)
		return
	}
	s.renderPage(w, r, web.PageVenue, detail)
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.PageNewVenue, "", models.Venue{})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	venue := forms.ParseVenue(parseForm(r))
	out, err := s.venues.Create(r.Context(), venue)
	s.outcome(w, r, "create venue", http.StatusCreated, out, err)
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	venue, err := s.venues.GetForEdit(r.Context(), id)
	if err != nil {
		s.fail(w, r, "get venue", err)
		return
	}
	s.render(w, r, http.StatusOK, web.PageEditVenue, "", venue)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	venue := forms.ParseVenue(parseForm(r))
	out, err := s.venues.Update(r.Context(), id, venue)
	if wantsJSON(r) {
		s.outcome(w, r, "update venue", http.StatusOK, out, err)
		return
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusNotFound {
			s.NotFound(w, r)
			return
		}
		logMutationFailure(r, "update venue", status, err)
		venue.ID = id
		s.render(w, r, status, web.PageEditVenue, out.Message, venue)
		return
	}
	redirectWithFlash(w, r, "/venues/"+strconv.FormatInt(id, 10), out.Message)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	out, err := s.venues.Delete(r.Context(), id)
	s.outcome(w, r, "delete venue", http.StatusOK, out, err)
}
