package httpapi

import (
	"net/http"
	"strconv"

	"fyyur/internal/app/artists"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/web"
)

type artistSearchView struct {
	SearchTerm string `json:"search_term"`
	artists.SearchResult
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	refs, err := s.artists.List(r.Context())
	if err != nil {
		s.fail(w, r, "list artists", err)
		return
	}
	s.renderPage(w, r, web.PageArtists, refs)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	result, err := s.artists.Search(r.Context(), term, s.now())
	if err != nil {
		s.fail(w, r, "search artists", err)
		return
	}
	s.render(w, r, http.StatusOK, web.PageSearchArtists, "", artistSearchView{SearchTerm: term, SearchResult: result})
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	detail, err := s.artists.Get(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, r, "get artist", err)
		return
	}
	s.renderPage(w, r, web.PageArtist, detail)
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.PageNewArtist, "", models.Artist{})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	artist := forms.ParseArtist(parseForm(r))
	out, err := s.artists.Create(r.Context(), artist)
	s.outcome(w, r, "create artist", http.StatusCreated, out, err)
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	artist, err := s.artists.GetForEdit(r.Context(), id)
	if err != nil {
		s.fail(w, r, "get artist", err)
		return
	}
	s.render(w, r, http.StatusOK, web.PageEditArtist, "", artist)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	artist := forms.ParseArtist(parseForm(r))
	out, err := s.artists.Update(r.Context(), id, artist)
	if wantsJSON(r) {
		s.outcome(w, r, "update artist", http.StatusOK, out, err)
		return
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusNotFound {
			s.NotFound(w, r)
			return
		}
		logMutationFailure(r, "update artist", status, err)
		artist.ID = id
		s.render(w, r, status, web.PageEditArtist, out.Message, artist)
		return
	}
	redirectWithFlash(w, r, "/artists/"+strconv.FormatInt(id, 10), out.Message)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.NotFound(w, r)
		return
	}

	out, err := s.artists.Delete(r.Context(), id)
	s.outcome(w, r, "delete artist", http.StatusOK, out, err)
}
