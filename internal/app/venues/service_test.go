package venues

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

type stubStore struct {
	summaries []models.Summary
	searched  string
	venue     models.Venue
	getErr    error
	listings  []models.ShowListing
	created   models.Venue
	writeErr  error
	deleted   int64
	gotNow    time.Time
}

func (s *stubStore) ListVenueSummaries(_ context.Context, now time.Time) ([]models.Summary, error) {
	s.gotNow = now
	return s.summaries, nil
}

func (s *stubStore) SearchVenues(_ context.Context, term string, now time.Time) ([]models.Summary, error) {
	s.searched = term
	s.gotNow = now
	return s.summaries, nil
}

func (s *stubStore) GetVenue(_ context.Context, id int64) (models.Venue, error) {
	if s.getErr != nil {
		return models.Venue{}, s.getErr
	}
	v := s.venue
	v.ID = id
	return v, nil
}

func (s *stubStore) ListShowsByVenue(context.Context, int64) ([]models.ShowListing, error) {
	return s.listings, nil
}

func (s *stubStore) CreateVenue(_ context.Context, venue models.Venue) (models.Venue, error) {
	if s.writeErr != nil {
		return models.Venue{}, s.writeErr
	}
	venue.ID = 7
	s.created = venue
	return venue, nil
}

func (s *stubStore) UpdateVenue(_ context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if s.writeErr != nil {
		return models.Venue{}, s.writeErr
	}
	venue.ID = id
	return venue, nil
}

func (s *stubStore) DeleteVenue(_ context.Context, id int64) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.deleted = id
	return nil
}

func TestListByAreaGroupsExactLocation(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	st := &stubStore{summaries: []models.Summary{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 8, Name: "Hop North", City: "san francisco", State: "CA"},
	}}

	areas, err := New(st, time.UTC).ListByArea(context.Background(), now)
	if err != nil {
		t.Fatalf("ListByArea error: %v", err)
	}
	if !st.gotNow.Equal(now) {
		t.Fatalf("expected now to reach the store, got %v", st.gotNow)
	}
	if len(areas) != 3 {
		t.Fatalf("expected 3 areas, got %d: %#v", len(areas), areas)
	}
	sf := areas[0]
	if sf.City != "San Francisco" || sf.State != "CA" || len(sf.Venues) != 2 {
		t.Fatalf("unexpected San Francisco group: %#v", sf)
	}
	if sf.Venues[0].NumUpcomingShows != 1 || sf.Venues[1].ID != 1 {
		t.Fatalf("unexpected venues in group: %#v", sf.Venues)
	}
	if areas[2].City != "san francisco" {
		t.Fatalf("expected differently cased city to form its own group, got %#v", areas[2])
	}
}

func TestListByAreaEmpty(t *testing.T) {
	areas, err := New(&stubStore{}, nil).ListByArea(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ListByArea error: %v", err)
	}
	if areas == nil || len(areas) != 0 {
		t.Fatalf("expected empty non-nil areas, got %#v", areas)
	}
}

func TestSearchCountsResults(t *testing.T) {
	st := &stubStore{summaries: []models.Summary{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 3, Name: "Park Square Live Music & Coffee"},
	}}

	res, err := New(st, time.UTC).Search(context.Background(), "Music", time.Now())
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if res.Count != 2 || len(res.Data) != 2 {
		t.Fatalf("unexpected result: %#v", res)
	}
	if st.searched != "Music" {
		t.Fatalf("expected term to reach the store, got %q", st.searched)
	}
}

func TestGetSplitsShows(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st := &stubStore{
		venue: models.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		listings: []models.ShowListing{
			{ID: 1, ArtistID: 4, ArtistName: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
			{ID: 2, ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: now},
			{ID: 3, ArtistID: 6, ArtistName: "The Wild Sax Band", StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
			{ID: 4, ArtistID: 6, ArtistName: "The Wild Sax Band", StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		},
	}

	d, err := New(st, time.UTC).Get(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d.PastShowsCount != 1 || d.UpcomingShowsCount != 2 {
		t.Fatalf("expected 1 past and 2 upcoming, got %d and %d", d.PastShowsCount, d.UpcomingShowsCount)
	}
	if d.Past[0].Name != "Guns N Petals" || d.Past[0].StartTime != "05/21/2019, 21:30:00" {
		t.Fatalf("unexpected past entry: %#v", d.Past[0])
	}
	if d.Upcoming[1].StartTime != "04/08/2035, 20:00:00" {
		t.Fatalf("unexpected upcoming entry: %#v", d.Upcoming[1])
	}
}

func TestGetNotFound(t *testing.T) {
	st := &stubStore{getErr: store.ErrVenueNotFound}

	_, err := New(st, time.UTC).Get(context.Background(), 999, time.Now())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		wantID  int64
	}{
		{"success", nil, "Venue The Musical Hop was successfully listed!", 7},
		{"failure", store.ErrStorage, "An error occurred. Venue The Musical Hop could not be listed.", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &stubStore{writeErr: tc.err}
			out, err := New(st, time.UTC).Create(context.Background(), models.Venue{Name: "The Musical Hop"})
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if out.Message != tc.wantMsg || out.ID != tc.wantID {
				t.Fatalf("unexpected outcome: %#v", out)
			}
		})
	}
}

func TestUpdateMessage(t *testing.T) {
	out, err := New(&stubStore{}, time.UTC).Update(context.Background(), 1, models.Venue{Name: "The Musical Hop"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if out.Message != "Venue The Musical Hop was successfully edited!" || out.ID != 1 {
		t.Fatalf("unexpected outcome: %#v", out)
	}
}

func TestDelete(t *testing.T) {
	st := &stubStore{venue: models.Venue{Name: "The Dueling Pianos Bar"}}

	out, err := New(st, time.UTC).Delete(context.Background(), 2)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if st.deleted != 2 || out.Message != "Venue The Dueling Pianos Bar was successfully deleted." {
		t.Fatalf("unexpected outcome: %#v (deleted %d)", out, st.deleted)
	}
}

func TestDeleteInUse(t *testing.T) {
	st := &stubStore{venue: models.Venue{Name: "The Musical Hop"}, writeErr: store.ErrInUse}

	out, err := New(st, time.UTC).Delete(context.Background(), 1)
	if !errors.Is(err, store.ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}
	if out.Message != "An error occurred. Venue The Musical Hop could not be deleted." {
		t.Fatalf("unexpected message %q", out.Message)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := &stubStore{}
	if _, err := New(st, time.UTC).Create(ctx, models.Venue{Name: "Hop"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if st.created.ID != 0 {
		t.Fatalf("expected no write after cancellation")
	}
}
