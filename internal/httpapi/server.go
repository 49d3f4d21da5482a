package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/models"
	"fyyur/internal/web"
)

// VenueService describes venue browsing and editing workflows.
type VenueService interface {
	ListByArea(ctx context.Context, now time.Time) ([]venues.Area, error)
	Search(ctx context.Context, term string, now time.Time) (venues.SearchResult, error)
	Get(ctx context.Context, id int64, now time.Time) (venues.Detail, error)
	GetForEdit(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, venue models.Venue) (models.Outcome, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Outcome, error)
	Delete(ctx context.Context, id int64) (models.Outcome, error)
}

// ArtistService describes artist browsing and editing workflows.
type ArtistService interface {
	List(ctx context.Context) ([]models.Ref, error)
	Search(ctx context.Context, term string, now time.Time) (artists.SearchResult, error)
	Get(ctx context.Context, id int64, now time.Time) (artists.Detail, error)
	GetForEdit(ctx context.Context, id int64) (models.Artist, error)
	Create(ctx context.Context, artist models.Artist) (models.Outcome, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Outcome, error)
	Delete(ctx context.Context, id int64) (models.Outcome, error)
}

// ShowService coordinates show listing and booking.
type ShowService interface {
	List(ctx context.Context) ([]shows.Listing, error)
	Create(ctx context.Context, show models.Show) (models.Outcome, error)
	FormOptions(ctx context.Context) (shows.Options, error)
}

// PageRenderer writes a named HTML page.
type PageRenderer interface {
	Render(w io.Writer, page string, view web.View) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	pages   PageRenderer
	loc     *time.Location

	// now is read once per request; every past/upcoming decision in that
	// request uses the same instant.
	now func() time.Time
}

// New configures a Server. Submitted start times without an offset are read
// in loc.
func New(venues VenueService, artists ArtistService, shows ShowService, pages PageRenderer, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		pages:   pages,
		loc:     loc,
		now:     time.Now,
	}
}

// Routes exposes the directory's pages and form endpoints.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(web.Static()).Methods(http.MethodGet)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	r.HandleFunc("/venues", s.handleListVenues).Methods(http.MethodGet)
	r.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/venues/create", s.handleNewVenueForm).Methods(http.MethodGet)
	r.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	r.HandleFunc("/venues/{id:[0-9]+}", s.handleGetVenue).Methods(http.MethodGet)
	r.HandleFunc("/venues/{id:[0-9]+}", s.handleDeleteVenue).Methods(http.MethodDelete)
	r.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenueForm).Methods(http.MethodGet)
	r.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)

	r.HandleFunc("/artists", s.handleListArtists).Methods(http.MethodGet)
	r.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/artists/create", s.handleNewArtistForm).Methods(http.MethodGet)
	r.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	r.HandleFunc("/artists/{id:[0-9]+}", s.handleGetArtist).Methods(http.MethodGet)
	r.HandleFunc("/artists/{id:[0-9]+}", s.handleDeleteArtist).Methods(http.MethodDelete)
	r.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtistForm).Methods(http.MethodGet)
	r.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	r.HandleFunc("/shows", s.handleListShows).Methods(http.MethodGet)
	r.HandleFunc("/shows/create", s.handleNewShowForm).Methods(http.MethodGet)
	r.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(s.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, web.PageHome, nil)
}
