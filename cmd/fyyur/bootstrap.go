package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// bootstrapDemoData lists the sample venues, artists and shows when the
// directory is empty. It is a no-op before migrations have run.
func bootstrapDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	for _, table := range []string{"venues", "artists", "shows"} {
		ok, err := tableExists(ctx, db, table)
		if err != nil {
			return fmt.Errorf("check %s table: %w", table, err)
		}
		if !ok {
			log.Warn().Str("table", table).Msg("schema missing, skipping demo data; run cmd/migrate up")
			return nil
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT (SELECT COUNT(*) FROM venues) + (SELECT COUNT(*) FROM artists)`).Scan(&count); err != nil {
		return fmt.Errorf("count directory entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	venueIDs := make(map[string]int64)
	for _, v := range demoVenues() {
		created, err := dataStore.CreateVenue(ctx, v)
		if err != nil {
			return fmt.Errorf("seed venue %s: %w", v.Name, err)
		}
		venueIDs[created.Name] = created.ID
	}

	artistIDs := make(map[string]int64)
	for _, a := range demoArtists() {
		created, err := dataStore.CreateArtist(ctx, a)
		if err != nil {
			return fmt.Errorf("seed artist %s: %w", a.Name, err)
		}
		artistIDs[created.Name] = created.ID
	}

	type seedShow struct {
		venue, artist string
		start         time.Time
	}
	for _, sh := range []seedShow{
		{"The Musical Hop", "Guns N Petals", time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		{"Park Square Live Music & Coffee", "Matt Quevedo", time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
		{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
	} {
		_, err := dataStore.CreateShow(ctx, models.Show{
			VenueID:   venueIDs[sh.venue],
			ArtistID:  artistIDs[sh.artist],
			StartTime: sh.start,
		})
		if err != nil {
			return fmt.Errorf("seed show %s at %s: %w", sh.artist, sh.venue, err)
		}
	}

	log.Info().Int("venues", len(venueIDs)).Int("artists", len(artistIDs)).Msg("Demo data seeded")
	return nil
}

func tableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, "public."+table).Scan(&exists)
	return exists, err
}

func demoVenues() []models.Venue {
	return []models.Venue{
		{
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
		},
	}
}

func demoArtists() []models.Artist {
	return []models.Artist{
		{
			Name:               "Guns N Petals",
			Genres:             []string{"Rock n Roll"},
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
		},
		{
			Name:         "Matt Quevedo",
			Genres:       []string{"Jazz"},
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    []string{"Jazz", "Classical"},
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
		},
	}
}
