package store

import (
	"context"
	"database/sql"
	"fmt"

	"fyyur/internal/models"
)

const showListingQuery = `
		SELECT sh.id, sh.venue_id, v.name, v.image_link,
		       sh.artist_id, a.name, a.image_link, sh.start_time
		FROM shows sh
		INNER JOIN venues v ON v.id = sh.venue_id
		INNER JOIN artists a ON a.id = sh.artist_id
`

// CreateShow books an artist at a venue. Both must already exist.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	if err := validateShow(show); err != nil {
		return models.Show{}, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, "artists", show.ArtistID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: artist %d", ErrReferentialIntegrity, show.ArtistID)
		}

		found, err = exists(ctx, tx, "venues", show.VenueID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: venue %d", ErrReferentialIntegrity, show.VenueID)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID, &show.CreatedAt)
		if err != nil {
			return fault("insert show", err)
		}
		return nil
	})
	if err != nil {
		return models.Show{}, err
	}

	return show, nil
}

// ListShows returns every show with its venue and artist details.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingQuery+`
		ORDER BY sh.start_time ASC, sh.id ASC
	`)
}

// ListShowsByVenue returns the shows hosted by a venue.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingQuery+`
		WHERE sh.venue_id = $1
		ORDER BY sh.start_time ASC, sh.id ASC
	`, venueID)
}

// ListShowsByArtist returns the shows an artist is booked for.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingQuery+`
		WHERE sh.artist_id = $1
		ORDER BY sh.start_time ASC, sh.id ASC
	`, artistID)
}

func (s *Store) queryShowListings(ctx context.Context, query string, args ...any) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fault("select shows", err)
	}
	defer rows.Close()

	listings := make([]models.ShowListing, 0)
	for rows.Next() {
		var l models.ShowListing
		if err := rows.Scan(&l.ID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, fault("scan shows", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fault("iterate shows", err)
	}

	return listings, nil
}

func validateShow(show models.Show) error {
	switch {
	case show.ArtistID <= 0:
		return fmt.Errorf("%w: artist_id is required", ErrValidation)
	case show.VenueID <= 0:
		return fmt.Errorf("%w: venue_id is required", ErrValidation)
	case show.StartTime.IsZero():
		return fmt.Errorf("%w: start_time is required", ErrValidation)
	}
	return nil
}
