package shows

import (
	"context"
	"time"

	"fyyur/internal/app/schedule"
	"fyyur/internal/models"
)

// Store defines persistence operations for shows.
type Store interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	ListArtistRefs(ctx context.Context) ([]models.Ref, error)
	ListVenueRefs(ctx context.Context) ([]models.Ref, error)
}

// Listing is one row of the global shows page.
type Listing struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Options feeds the pickers of the show creation form.
type Options struct {
	Artists []models.Ref `json:"artists"`
	Venues  []models.Ref `json:"venues"`
}

// CreateFailed is the message shown when a show could not be booked.
const CreateFailed = "An error occurred. Show could not be listed."

// Service coordinates show-related operations.
type Service interface {
	List(ctx context.Context) ([]Listing, error)
	Create(ctx context.Context, show models.Show) (models.Outcome, error)
	FormOptions(ctx context.Context) (Options, error)
}

type service struct {
	store Store
	loc   *time.Location
}

// New constructs a shows Service. Start times are displayed in loc.
func New(store Store, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{store: store, loc: loc}
}

// List returns every show, past and upcoming alike, in start time order.
func (s *service) List(ctx context.Context) ([]Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.store.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, Listing{
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       schedule.Format(r.StartTime, s.loc),
		})
	}
	return listings, nil
}

func (s *service) Create(ctx context.Context, show models.Show) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return models.Outcome{Message: CreateFailed}, err
	}

	created, err := s.store.CreateShow(ctx, show)
	if err != nil {
		return models.Outcome{Message: CreateFailed}, err
	}
	return models.Outcome{ID: created.ID, Message: "Show was successfully listed!"}, nil
}

func (s *service) FormOptions(ctx context.Context) (Options, error) {
	if err := ctx.Err(); err != nil {
		return Options{}, err
	}

	artists, err := s.store.ListArtistRefs(ctx)
	if err != nil {
		return Options{}, err
	}
	venues, err := s.store.ListVenueRefs(ctx)
	if err != nil {
		return Options{}, err
	}
	return Options{Artists: artists, Venues: venues}, nil
}
