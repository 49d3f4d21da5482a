package artists

import (
	"context"
	"time"

	"fyyur/internal/app/schedule"
	"fyyur/internal/models"
)

// Store defines the persistence operations the artist service relies on.
type Store interface {
	ListArtistRefs(ctx context.Context) ([]models.Ref, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowListing, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
}

// SearchResult is the answer to a name search.
type SearchResult struct {
	Count int              `json:"count"`
	Data  []models.Summary `json:"data"`
}

// Detail is an artist with the venues they played or will play.
type Detail struct {
	models.Artist
	schedule.Split
	PastShowsCount     int `json:"past_shows_count"`
	UpcomingShowsCount int `json:"upcoming_shows_count"`
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context) ([]models.Ref, error)
	Search(ctx context.Context, term string, now time.Time) (SearchResult, error)
	Get(ctx context.Context, id int64, now time.Time) (Detail, error)
	GetForEdit(ctx context.Context, id int64) (models.Artist, error)
	Create(ctx context.Context, artist models.Artist) (models.Outcome, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Outcome, error)
	Delete(ctx context.Context, id int64) (models.Outcome, error)
}

type service struct {
	store Store
	loc   *time.Location
}

// New constructs an artist Service. Start times are displayed in loc.
func New(store Store, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{store: store, loc: loc}
}

func (s *service) List(ctx context.Context) ([]models.Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtistRefs(ctx)
}

func (s *service) Search(ctx context.Context, term string, now time.Time) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	found, err := s.store.SearchArtists(ctx, term, now)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Count: len(found), Data: found}, nil
}

func (s *service) Get(ctx context.Context, id int64, now time.Time) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	listings, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	split := schedule.Partition(listings, now, s.loc, schedule.VenueSide)
	return Detail{
		Artist:             artist,
		Split:              split,
		PastShowsCount:     len(split.Past),
		UpcomingShowsCount: len(split.Upcoming),
	}, nil
}

func (s *service) GetForEdit(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return failure(artist.Name, "listed"), err
	}

	created, err := s.store.CreateArtist(ctx, artist)
	if err != nil {
		return failure(artist.Name, "listed"), err
	}
	return models.Outcome{ID: created.ID, Message: label(created.Name) + " was successfully listed!"}, nil
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return failure(artist.Name, "edited"), err
	}

	updated, err := s.store.UpdateArtist(ctx, id, artist)
	if err != nil {
		return models.Outcome{ID: id, Message: failure(artist.Name, "edited").Message}, err
	}
	return models.Outcome{ID: updated.ID, Message: label(updated.Name) + " was successfully edited!"}, nil
}

func (s *service) Delete(ctx context.Context, id int64) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return failure("", "deleted"), err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return failure("", "deleted"), err
	}
	if err := s.store.DeleteArtist(ctx, id); err != nil {
		return models.Outcome{ID: id, Message: failure(artist.Name, "deleted").Message}, err
	}
	return models.Outcome{ID: id, Message: label(artist.Name) + " was successfully deleted."}, nil
}

func label(name string) string {
	if name == "" {
		return "Artist"
	}
	return "Artist " + name
}

func failure(name, action string) models.Outcome {
	return models.Outcome{Message: "An error occurred. " + label(name) + " could not be " + action + "."}
}
