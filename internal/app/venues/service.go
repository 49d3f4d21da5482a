package venues

import (
	"context"
	"time"

	"fyyur/internal/app/schedule"
	"fyyur/internal/models"
)

// Store defines the persistence operations the venue service relies on.
type Store interface {
	ListVenueSummaries(ctx context.Context, now time.Time) ([]models.Summary, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowListing, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
}

// Listed is a venue as it appears inside an area group.
type Listed struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing one exact city and state.
type Area struct {
	City   string   `json:"city"`
	State  string   `json:"state"`
	Venues []Listed `json:"venues"`
}

// SearchResult is the answer to a name search.
type SearchResult struct {
	Count int              `json:"count"`
	Data  []models.Summary `json:"data"`
}

// Detail is a venue with its shows split around the request time.
type Detail struct {
	models.Venue
	schedule.Split
	PastShowsCount     int `json:"past_shows_count"`
	UpcomingShowsCount int `json:"upcoming_shows_count"`
}

// Service coordinates venue browsing and editing.
type Service interface {
	ListByArea(ctx context.Context, now time.Time) ([]Area, error)
	Search(ctx context.Context, term string, now time.Time) (SearchResult, error)
	Get(ctx context.Context, id int64, now time.Time) (Detail, error)
	GetForEdit(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, venue models.Venue) (models.Outcome, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Outcome, error)
	Delete(ctx context.Context, id int64) (models.Outcome, error)
}

type service struct {
	store Store
	loc   *time.Location
}

// New constructs a venue Service. Start times are displayed in loc.
func New(store Store, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{store: store, loc: loc}
}

func (s *service) ListByArea(ctx context.Context, now time.Time) ([]Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries, err := s.store.ListVenueSummaries(ctx, now)
	if err != nil {
		return nil, err
	}
	return groupByArea(summaries), nil
}

func (s *service) Search(ctx context.Context, term string, now time.Time) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	found, err := s.store.SearchVenues(ctx, term, now)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Count: len(found), Data: found}, nil
}

func (s *service) Get(ctx context.Context, id int64, now time.Time) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	listings, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	split := schedule.Partition(listings, now, s.loc, schedule.ArtistSide)
	return Detail{
		Venue:              venue,
		Split:              split,
		PastShowsCount:     len(split.Past),
		UpcomingShowsCount: len(split.Upcoming),
	}, nil
}

func (s *service) GetForEdit(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return failure(venue.Name, "listed"), err
	}

	created, err := s.store.CreateVenue(ctx, venue)
	if err != nil {
		return failure(venue.Name, "listed"), err
	}
	return models.Outcome{ID: created.ID, Message: label(created.Name) + " was successfully listed!"}, nil
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return failure(venue.Name, "edited"), err
	}

	updated, err := s.store.UpdateVenue(ctx, id, venue)
	if err != nil {
		return models.Outcome{ID: id, Message: failure(venue.Name, "edited").Message}, err
	}
	return models.Outcome{ID: updated.ID, Message: label(updated.Name) + " was successfully edited!"}, nil
}

// Delete removes a venue that hosts no shows. The stored name is looked up
// first so both messages can name the venue.
func (s *service) Delete(ctx context.Context, id int64) (models.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return failure("", "deleted"), err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return failure("", "deleted"), err
	}
	if err := s.store.DeleteVenue(ctx, id); err != nil {
		return models.Outcome{ID: id, Message: failure(venue.Name, "deleted").Message}, err
	}
	return models.Outcome{ID: id, Message: label(venue.Name) + " was successfully deleted."}, nil
}

// groupByArea keeps the incoming order: areas appear in the order their
// first venue does.
func groupByArea(summaries []models.Summary) []Area {
	type key struct{ city, state string }

	areas := make([]Area, 0)
	index := make(map[key]int)
	for _, sum := range summaries {
		k := key{sum.City, sum.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: sum.City, State: sum.State})
		}
		areas[i].Venues = append(areas[i].Venues, Listed{
			ID:               sum.ID,
			Name:             sum.Name,
			NumUpcomingShows: sum.NumUpcomingShows,
		})
	}
	return areas
}

func label(name string) string {
	if name == "" {
		return "Venue"
	}
	return "Venue " + name
}

func failure(name, action string) models.Outcome {
	return models.Outcome{Message: "An error occurred. " + label(name) + " could not be " + action + "."}
}
