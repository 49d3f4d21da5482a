// Package forms turns submitted HTML form values into typed records.
package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// startTimeLayouts are tried in order when reading a show's start time.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseVenue reads a venue form. Required fields are checked by the store.
func ParseVenue(values url.Values) models.Venue {
	return models.Venue{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Address:            text(values, "address"),
		Phone:              text(values, "phone"),
		Genres:             Genres(values),
		Website:            text(values, "website_link", "website"),
		FacebookLink:       text(values, "facebook_link"),
		ImageLink:          text(values, "image_link"),
		SeekingTalent:      Flag(values, "seeking_talent"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// ParseArtist reads an artist form. Required fields are checked by the store.
func ParseArtist(values url.Values) models.Artist {
	return models.Artist{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Phone:              text(values, "phone"),
		Genres:             Genres(values),
		Website:            text(values, "website_link", "website"),
		FacebookLink:       text(values, "facebook_link"),
		ImageLink:          text(values, "image_link"),
		SeekingVenue:       Flag(values, "seeking_venue"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// ParseShow reads a show form. Start times without an offset are read in loc.
func ParseShow(values url.Values, loc *time.Location) (models.Show, error) {
	artistID, err := ParseID(text(values, "artist_id"))
	if err != nil {
		return models.Show{}, fmt.Errorf("artist_id: %w", err)
	}
	venueID, err := ParseID(text(values, "venue_id"))
	if err != nil {
		return models.Show{}, fmt.Errorf("venue_id: %w", err)
	}
	start, err := ParseStartTime(text(values, "start_time"), loc)
	if err != nil {
		return models.Show{}, err
	}
	return models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

// ParseID reads a positive record id.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: id is required", store.ErrValidation)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", store.ErrValidation, raw)
	}
	return id, nil
}

// ParseStartTime accepts the datetime shapes browsers and the classic form
// submit. A nil loc means UTC.
func ParseStartTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: start_time is required", store.ErrValidation)
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid start_time %q", store.ErrValidation, raw)
}

// Genres collects the multi-valued genres field. Both "genres" and
// "genres[]" are read; blank entries are dropped and order is kept.
func Genres(values url.Values) []string {
	genres := make([]string, 0)
	for _, key := range []string{"genres", "genres[]"} {
		for _, g := range values[key] {
			if g = strings.TrimSpace(g); g != "" {
				genres = append(genres, g)
			}
		}
	}
	return genres
}

// Flag reports whether a checkbox-style field was submitted with a truthy
// value. Absent fields are false.
func Flag(values url.Values, key string) bool {
	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(raw[0])) {
	case "", "false", "off", "0", "n", "no":
		return false
	}
	return true
}

func text(values url.Values, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			return v
		}
	}
	return ""
}
