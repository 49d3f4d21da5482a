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

const artistColumns = `id, name, city, state, phone, genres, website,
		       facebook_link, image_link, seeking_venue, seeking_description,
		       created_at, updated_at`

// CreateArtist inserts a new artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	artist = normalizeArtist(artist)
	if err := validateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, website,
			                     facebook_link, image_link, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at, updated_at
		`, artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
			artist.Website, artist.FacebookLink, artist.ImageLink, artist.SeekingVenue, artist.SeekingDescription,
		).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)
		if err != nil {
			return fault("insert artist", err)
		}
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	return artist, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id)

	a, err := scanArtist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fault("select artist", err)
	}

	return a, nil
}

// UpdateArtist overwrites every mutable field of an existing artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	artist = normalizeArtist(artist)
	if err := validateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	var updated models.Artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, genres = $5, website = $6,
			    facebook_link = $7, image_link = $8, seeking_venue = $9,
			    seeking_description = $10, updated_at = CURRENT_TIMESTAMP
			WHERE id = $11
			RETURNING `+artistColumns+`
		`, artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
			artist.Website, artist.FacebookLink, artist.ImageLink, artist.SeekingVenue, artist.SeekingDescription,
			id,
		)

		a, err := scanArtist(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		if err != nil {
			return fault("update artist", err)
		}
		updated = a
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	return updated, nil
}

// DeleteArtist removes an artist. Artists with booked shows are kept and
// ErrInUse is returned.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		n, err := countShows(ctx, tx, "artist_id", id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: artist %d has %d shows", ErrInUse, id, n)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: artist %d", ErrInUse, id)
			}
			return fault("delete artist", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fault("delete artist", err)
		}
		if rows == 0 {
			return ErrArtistNotFound
		}
		return nil
	})
}

// ListArtistRefs returns the id and name of every artist.
func (s *Store) ListArtistRefs(ctx context.Context) ([]models.Ref, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fault("select artists", err)
	}
	defer rows.Close()

	return scanRefs(rows, "artists")
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.city, a.state,
		       COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows sh ON sh.artist_id = a.id
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.name ASC, a.id ASC
	`, now, likePattern(term))
	if err != nil {
		return nil, fault("search artists", err)
	}
	defer rows.Close()

	return scanSummaries(rows, "artists")
}

func scanArtist(row rowScanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.Website, &a.FacebookLink, &a.ImageLink, &a.SeekingVenue, &a.SeekingDescription,
		&a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func normalizeArtist(a models.Artist) models.Artist {
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Genres = normalizeGenres(a.Genres)
	if !a.SeekingVenue {
		a.SeekingDescription = ""
	}
	return a
}

func validateArtist(a models.Artist) error {
	if err := requireText("name", a.Name); err != nil {
		return err
	}
	if err := requireText("city", a.City); err != nil {
		return err
	}
	return requireText("state", a.State)
}
