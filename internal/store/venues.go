package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

const venueColumns = `id, name, city, state, address, phone, genres, website,
		       facebook_link, image_link, seeking_talent, seeking_description,
		       created_at, updated_at`

// CreateVenue inserts a new venue and returns it with its assigned id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	venue = normalizeVenue(venue)
	if err := validateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres, website,
			                    facebook_link, image_link, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at
		`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
			venue.Website, venue.FacebookLink, venue.ImageLink, venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
		if err != nil {
			return fault("insert venue", err)
		}
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	return venue, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id)

	v, err := scanVenue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fault("select venue", err)
	}

	return v, nil
}

// UpdateVenue overwrites every mutable field of an existing venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	venue = normalizeVenue(venue)
	if err := validateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	var updated models.Venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE venues
			SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			    website = $7, facebook_link = $8, image_link = $9, seeking_talent = $10,
			    seeking_description = $11, updated_at = CURRENT_TIMESTAMP
			WHERE id = $12
			RETURNING `+venueColumns+`
		`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
			venue.Website, venue.FacebookLink, venue.ImageLink, venue.SeekingTalent, venue.SeekingDescription,
			id,
		)

		v, err := scanVenue(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		if err != nil {
			return fault("update venue", err)
		}
		updated = v
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	return updated, nil
}

// DeleteVenue removes a venue. Venues that still host shows are kept and
// ErrInUse is returned.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		n, err := countShows(ctx, tx, "venue_id", id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: venue %d has %d shows", ErrInUse, id, n)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: venue %d", ErrInUse, id)
			}
			return fault("delete venue", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fault("delete venue", err)
		}
		if rows == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
}

// ListVenueSummaries returns every venue with the number of shows starting
// strictly after now, ordered by location then name.
func (s *Store) ListVenueSummaries(ctx context.Context, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.city ASC, v.state ASC, v.name ASC, v.id ASC
	`, now)
	if err != nil {
		return nil, fault("select venues", err)
	}
	defer rows.Close()

	return scanSummaries(rows, "venues")
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.name ASC, v.id ASC
	`, now, likePattern(term))
	if err != nil {
		return nil, fault("search venues", err)
	}
	defer rows.Close()

	return scanSummaries(rows, "venues")
}

// ListVenueRefs returns the id and name of every venue.
func (s *Store) ListVenueRefs(ctx context.Context) ([]models.Ref, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM venues
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fault("select venues", err)
	}
	defer rows.Close()

	return scanRefs(rows, "venues")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, pq.Array(&v.Genres),
		&v.Website, &v.FacebookLink, &v.ImageLink, &v.SeekingTalent, &v.SeekingDescription,
		&v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func scanSummaries(rows *sql.Rows, what string) ([]models.Summary, error) {
	summaries := make([]models.Summary, 0)
	for rows.Next() {
		var sum models.Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.City, &sum.State, &sum.NumUpcomingShows); err != nil {
			return nil, fault("scan "+what, err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fault("iterate "+what, err)
	}
	return summaries, nil
}

func scanRefs(rows *sql.Rows, what string) ([]models.Ref, error) {
	refs := make([]models.Ref, 0)
	for rows.Next() {
		var ref models.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fault("scan "+what, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fault("iterate "+what, err)
	}
	return refs, nil
}

func normalizeVenue(v models.Venue) models.Venue {
	v.Name = strings.TrimSpace(v.Name)
	v.City = strings.TrimSpace(v.City)
	v.State = strings.TrimSpace(v.State)
	v.Address = strings.TrimSpace(v.Address)
	v.Phone = strings.TrimSpace(v.Phone)
	v.Genres = normalizeGenres(v.Genres)
	if !v.SeekingTalent {
		v.SeekingDescription = ""
	}
	return v
}

func validateVenue(v models.Venue) error {
	for _, f := range []struct{ name, value string }{
		{"name", v.Name},
		{"city", v.City},
		{"state", v.State},
	} {
		if err := requireText(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
